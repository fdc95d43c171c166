package employee

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	RoleManager   = "Manager"
	RoleDeveloper = "Developer"
	RoleHR        = "HR"
	RoleDesigner  = "Designer"
	RoleOther     = "Other"
)

type Employee struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;not null"`
	Email  string `gorm:"column:email;uniqueIndex;not null"`
	Phone  string `gorm:"column:phone;not null"`
	Gender string `gorm:"column:gender;not null"`
	Role   string `gorm:"column:role;not null"`
}

func (Employee) TableName() string {
	return "employees"
}
