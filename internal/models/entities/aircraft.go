package entities

type Aircraft struct {
	TailNumber string `db:"tail_number"`
	ID         string `db:"id"`
	Model      string `db:"model"`
	Capacity   int    `db:"capacity"`
	Status     string `db:"status"`
}
