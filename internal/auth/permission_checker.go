package auth

type Action string

const (
	ActionApproveLeave     Action = "approve_leave"
	ActionManageTasks      Action = "manage_tasks"
	ActionManageMilestones Action = "manage_milestones"
	ActionViewAllData      Action = "view_all_data"
	ActionManageRecords    Action = "manage_records"
	ActionDeleteUser       Action = "delete_user"
)

// PermissionChecker answers whether a role holds the capability for an action.
type PermissionChecker interface {
	Can(role Role, action Action) bool
}

type DefaultPermissionChecker struct {
	grants map[Action][]Role
}

func NewPermissionChecker() PermissionChecker {
	managers := []Role{RoleAdmin, RoleManager}
	return &DefaultPermissionChecker{
		grants: map[Action][]Role{
			ActionApproveLeave:     managers,
			ActionManageTasks:      managers,
			ActionManageMilestones: managers,
			ActionViewAllData:      managers,
			ActionManageRecords:    managers,
			ActionDeleteUser:       {RoleAdmin},
		},
	}
}

func (c *DefaultPermissionChecker) Can(role Role, action Action) bool {
	for _, r := range c.grants[action] {
		if r == role {
			return true
		}
	}
	return false
}
