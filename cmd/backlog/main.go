package main

import (
	"github.com/bornholm/backlog/internal/command"
	"github.com/bornholm/backlog/internal/command/health"
	"github.com/bornholm/backlog/internal/command/migrate"
	"github.com/bornholm/backlog/internal/command/teams"
	"github.com/bornholm/backlog/internal/command/users"
)

func main() {
	command.Main(
		"backlog", "administration and client tool of the backlog server",
		migrate.Command(),
		users.Command(),
		health.Command(),
		teams.Command(),
	)
}
