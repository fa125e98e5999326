package port

import (
	"context"

	"github.com/bornholm/backlog/internal/core/model"
)

type TeamStore interface {
	// CreateTeam inserts a new team with its members, or returns ErrAlreadyExists if its slug is taken
	CreateTeam(ctx context.Context, team *model.Team) error

	// GetTeamBySlug finds a team by its slug, or returns ErrNotFound if not found
	GetTeamBySlug(ctx context.Context, slug string) (*model.Team, error)

	// QueryTeams lists teams, ordered by creation date
	QueryTeams(ctx context.Context, opts QueryTeamsOptions) ([]*model.Team, error)

	// UpdateTeamOwner changes the owner of a team. The new owner must already be a member.
	UpdateTeamOwner(ctx context.Context, teamID model.TeamID, ownerID model.UserID) error

	// AddTeamMember appends a user to the members of a team, or returns ErrAlreadyExists
	AddTeamMember(ctx context.Context, teamID model.TeamID, userID model.UserID) error

	// DeleteTeam removes a team and, in the same transaction, every feature,
	// story and task it owns
	DeleteTeam(ctx context.Context, teamID model.TeamID) (*DeleteReport, error)
}

type QueryTeamsOptions struct {
	// MemberID restricts the results to the teams the given user is a member of
	MemberID *model.UserID
}

// DeleteReport counts the records removed by a cascading deletion.
type DeleteReport struct {
	Teams    int64
	Features int64
	Stories  int64
	Tasks    int64
}
