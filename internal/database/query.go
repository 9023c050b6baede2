package database

import "strings"

// Conditions accumulates AND-ed predicates written with ? placeholders.
// Callers pass the final statement through Rebind for the driver's bindvar style.
type Conditions struct {
	clauses []string
	args    []interface{}
}

func (c *Conditions) Add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

func (c *Conditions) Args() []interface{} {
	return c.args
}

// Assignments builds the SET list of a partial UPDATE.
type Assignments struct {
	sets []string
	args []interface{}
}

func (a *Assignments) Set(column string, value interface{}) {
	a.sets = append(a.sets, column+" = ?")
	a.args = append(a.args, value)
}

// SetRaw appends a parameterless expression such as "completion_date = NOW()".
func (a *Assignments) SetRaw(expr string) {
	a.sets = append(a.sets, expr)
}

func (a *Assignments) Len() int {
	return len(a.sets)
}

func (a *Assignments) SQL() string {
	return strings.Join(a.sets, ", ")
}

func (a *Assignments) Args() []interface{} {
	return a.args
}
