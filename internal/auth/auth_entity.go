package auth

// Administrator is a row of the admins table. Password is stored and compared
// as plain text.
type Administrator struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"column:username;uniqueIndex"`
	Password string `gorm:"column:password"`
}

func (Administrator) TableName() string {
	return "admins"
}
