package domain

type Post struct {
	ID      int    `db:"id"`
	Title   string `db:"title"`
	Content string `db:"content"`
	Views   int64  `db:"views"`
}

type Player struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Money int64  `db:"money"`
	Level int    `db:"level"`
}
