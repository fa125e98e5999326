package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type TeamManagerOptions struct {
	MaxAttempts  int
	StatusPolicy model.StatusPolicy
}

type TeamManagerOptionFunc func(opts *TeamManagerOptions)

func WithTeamManagerMaxAttempts(maxAttempts int) TeamManagerOptionFunc {
	return func(opts *TeamManagerOptions) {
		opts.MaxAttempts = maxAttempts
	}
}

func WithTeamManagerStatusPolicy(policy model.StatusPolicy) TeamManagerOptionFunc {
	return func(opts *TeamManagerOptions) {
		opts.StatusPolicy = policy
	}
}

func NewTeamManagerOptions(funcs ...TeamManagerOptionFunc) *TeamManagerOptions {
	opts := &TeamManagerOptions{
		MaxAttempts:  DefaultMaxAttempts,
		StatusPolicy: model.OpenStatusPolicy,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type TeamManager struct {
	store port.Store

	maxAttempts  int
	statusPolicy model.StatusPolicy
}

func (m *TeamManager) CreateTeam(ctx context.Context, user *model.User, slug string, name string) (*model.Team, error) {
	if user == nil {
		return nil, errors.WithStack(ErrUnauthorized)
	}

	slug = strings.TrimSpace(slug)
	if slug == "" || strings.TrimSpace(name) == "" {
		return nil, errors.WithStack(ErrInvalidRequest)
	}

	if _, err := m.store.GetTeamBySlug(ctx, slug); err == nil {
		return nil, errors.WithStack(ErrTeamAlreadyExists)
	} else if !errors.Is(err, port.ErrNotFound) {
		return nil, errors.WithStack(err)
	}

	team := model.NewTeam(slug, name, user)

	if err := m.store.CreateTeam(ctx, team); err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			return nil, errors.WithStack(ErrTeamAlreadyExists)
		}

		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "team created", slog.String("slug", slug), slog.String("ownerID", string(user.ID)))

	return m.populatedTeam(ctx, slug)
}

func (m *TeamManager) GetTeam(ctx context.Context, user *model.User, slug string) (*model.Team, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := team.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	return team, nil
}

// ListTeams returns the teams the user is a member of.
func (m *TeamManager) ListTeams(ctx context.Context, user *model.User) ([]*model.Team, error) {
	if user == nil {
		return nil, errors.WithStack(ErrUnauthorized)
	}

	teams, err := m.store.QueryTeams(ctx, port.QueryTeamsOptions{
		MemberID: &user.ID,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := model.PopulateAll(ctx, m.store, teams...); err != nil {
		return nil, errors.WithStack(err)
	}

	return teams, nil
}

// DeleteTeam removes a team with its features, stories and tasks.
// Only the owner of the team is allowed to delete it.
func (m *TeamManager) DeleteTeam(ctx context.Context, user *model.User, slug string) error {
	team, err := getOwnedTeam(ctx, m.store, user, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("slug", slug))

	report, err := m.store.DeleteTeam(ctx, team.ID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return errors.WithStack(ErrTeamNotFound)
		}

		slog.ErrorContext(ctx, "could not delete team", slogx.Error(err))

		return errors.WithStack(err)
	}

	recordDeletion(ctx, report)

	return nil
}

// ChangeOwner hands the ownership of a team over to one of its members.
func (m *TeamManager) ChangeOwner(ctx context.Context, user *model.User, slug string, targetHandle string) (*model.Team, error) {
	team, err := getOwnedTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	target, err := m.store.GetUserByHandle(ctx, targetHandle)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrUserNotInTeam)
		}

		return nil, errors.WithStack(err)
	}

	if !team.IsMember(target.ID) {
		return nil, errors.WithStack(ErrUserNotInTeam)
	}

	if err := m.store.UpdateTeamOwner(ctx, team.ID, target.ID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrUserNotInTeam)
		}

		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "team owner changed", slog.String("slug", slug), slog.String("ownerID", string(target.ID)))

	return m.populatedTeam(ctx, slug)
}

func (m *TeamManager) AddMember(ctx context.Context, user *model.User, slug string, memberHandle string) (*model.Team, error) {
	team, err := getMemberTeam(ctx, m.store, user, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	member, err := m.store.GetUserByHandle(ctx, memberHandle)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrUserNotFound)
		}

		return nil, errors.WithStack(err)
	}

	if team.IsMember(member.ID) {
		return nil, errors.WithStack(ErrUserAlreadyInTeam)
	}

	if err := m.store.AddTeamMember(ctx, team.ID, member.ID); err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			return nil, errors.WithStack(ErrUserAlreadyInTeam)
		}

		return nil, errors.WithStack(err)
	}

	return m.populatedTeam(ctx, slug)
}

func (m *TeamManager) populatedTeam(ctx context.Context, slug string) (*model.Team, error) {
	team, err := m.store.GetTeamBySlug(ctx, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := team.Populate(ctx, m.store); err != nil {
		return nil, errors.WithStack(err)
	}

	return team, nil
}

func NewTeamManager(store port.Store, funcs ...TeamManagerOptionFunc) *TeamManager {
	opts := NewTeamManagerOptions(funcs...)

	return &TeamManager{
		store:        store,
		maxAttempts:  opts.MaxAttempts,
		statusPolicy: opts.StatusPolicy,
	}
}
