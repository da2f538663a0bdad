package domain

import "time"

// Team - состав команды на сезон (SeasonTeam)
type Team struct {
	ID        int
	Name      string
	Members   []Member
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Member struct {
	ID           int
	TeamID       int
	Name         string
	Nickname     string
	Abbreviation string
	CreatedAt    time.Time
}
