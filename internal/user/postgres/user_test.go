package postgres

import (
	"context"
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/frahmantamala/productivity-management/db"
	"github.com/frahmantamala/productivity-management/internal"
	userDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Repository Suite")
}

// leaveOwnerColumns lifts the user-referencing column definitions out of the
// leaves migration so the sqlite table carries the same ON DELETE actions.
func leaveOwnerColumns() []string {
	body, err := fs.ReadFile(db.Migrations, db.MigrationsDir+"/20250101000004_create_leaves.sql")
	Expect(err).NotTo(HaveOccurred())

	re := regexp.MustCompile(`(?m)^\s*((?:employee_id|approved_by)\s+BIGINT REFERENCES users \(id\)[^,\n]*)`)
	var cols []string
	for _, m := range re.FindAllStringSubmatch(string(body), -1) {
		cols = append(cols, strings.TrimSpace(m[1]))
	}
	Expect(cols).To(HaveLen(2))
	return cols
}

var _ = Describe("UserRepository", func() {
	var (
		gdb  *gorm.DB
		repo *UserRepository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		gdb, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := gdb.DB()
		Expect(err).NotTo(HaveOccurred())
		// foreign_keys and :memory: are both per connection
		sqlDB.SetMaxOpenConns(1)
		DeferCleanup(sqlDB.Close)

		Expect(gdb.Exec("PRAGMA foreign_keys = ON").Error).To(Succeed())
		Expect(gdb.AutoMigrate(&userDatamodel.User{})).To(Succeed())
		Expect(gdb.Exec("CREATE TABLE leaves (leave_id INTEGER PRIMARY KEY, " +
			strings.Join(leaveOwnerColumns(), ", ") +
			", leave_type TEXT NOT NULL)").Error).To(Succeed())

		Expect(gdb.Create(&[]userDatamodel.User{
			{Name: "Ada Admin", Email: "admin@example.com", Password: "x", Role: "admin"},
			{Name: "Eve Employee", Email: "eve@example.com", Password: "x", Role: "employee"},
		}).Error).To(Succeed())

		repo = NewUserRepository(gdb)
		ctx = context.Background()
	})

	It("keeps the leaves of a deleted user with no owner", func() {
		Expect(gdb.Exec("INSERT INTO leaves (leave_id, employee_id, approved_by, leave_type) VALUES (1, 2, 1, 'Sick Leave')").Error).To(Succeed())

		Expect(repo.Delete(ctx, 2)).To(Succeed())

		var rows []struct {
			LeaveID    int64
			EmployeeID *int64
			ApprovedBy *int64
		}
		Expect(gdb.Raw("SELECT leave_id, employee_id, approved_by FROM leaves").Scan(&rows).Error).To(Succeed())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].EmployeeID).To(BeNil())
		Expect(*rows[0].ApprovedBy).To(Equal(int64(1)))
	})

	It("nulls the approver when the approving user goes", func() {
		Expect(gdb.Exec("INSERT INTO leaves (leave_id, employee_id, approved_by, leave_type) VALUES (1, 2, 1, 'Annual Leave')").Error).To(Succeed())

		Expect(repo.Delete(ctx, 1)).To(Succeed())

		var approvedBy *int64
		Expect(gdb.Raw("SELECT approved_by FROM leaves WHERE leave_id = 1").Row().Scan(&approvedBy)).To(Succeed())
		Expect(approvedBy).To(BeNil())
	})

	It("reports a missing user", func() {
		Expect(repo.Delete(ctx, 99)).To(MatchError(internal.ErrUserNotFound))
		_, err := repo.GetByID(ctx, 99)
		Expect(err).To(MatchError(internal.ErrUserNotFound))
	})
})
