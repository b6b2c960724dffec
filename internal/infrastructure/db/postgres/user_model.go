package postgres

type UserModel struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
