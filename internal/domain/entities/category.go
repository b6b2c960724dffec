package entities

// Category identifies one timer challenge. Each category tracks an
// independent high score.
type Category string

const (
	CategoryTimer1  Category = "timer1Score"
	CategoryTimer5  Category = "timer5Score"
	CategoryTimer10 Category = "timer10Score"
	CategoryTimer15 Category = "timer15Score"
	CategoryTimer30 Category = "timer30Score"
)

// Categories returns the closed set of timer categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryTimer1,
		CategoryTimer5,
		CategoryTimer10,
		CategoryTimer15,
		CategoryTimer30,
	}
}

// ParseCategory validates a timer name against the closed enumeration.
func ParseCategory(name string) (Category, bool) {
	switch Category(name) {
	case CategoryTimer1, CategoryTimer5, CategoryTimer10, CategoryTimer15, CategoryTimer30:
		return Category(name), true
	}
	return "", false
}
