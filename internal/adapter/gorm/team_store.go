package gorm

import (
	"context"
	"slices"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadTeam(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Members", orderByPosition).
		Preload("Features", orderByPosition).
		Preload("Backlog", orderByPosition)
}

// CreateTeam implements port.TeamStore.
func (s *Store) CreateTeam(ctx context.Context, team *model.Team) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit(clause.Associations).Create(fromTeam(team)).Error; err != nil {
			return translateError(err)
		}

		memberIDs := team.MemberIDs
		if !slices.Contains(memberIDs, team.OwnerID) {
			memberIDs = append([]model.UserID{team.OwnerID}, memberIDs...)
		}

		for position, userID := range memberIDs {
			member := &TeamMember{
				TeamID:   string(team.ID),
				UserID:   string(userID),
				Position: position,
			}

			if err := db.Omit(clause.Associations).Create(member).Error; err != nil {
				return translateError(err)
			}
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetTeamBySlug implements port.TeamStore.
func (s *Store) GetTeamBySlug(ctx context.Context, slug string) (*model.Team, error) {
	var team Team

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := preloadTeam(db).First(&team, "slug = ?", slug).Error; err != nil {
			return translateError(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toTeam(&team), nil
}

// QueryTeams implements port.TeamStore.
func (s *Store) QueryTeams(ctx context.Context, opts port.QueryTeamsOptions) ([]*model.Team, error) {
	var teams []*Team

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		query := preloadTeam(db.Model(&Team{}))

		if opts.MemberID != nil {
			memberships := db.Model(&TeamMember{}).Select("team_id").Where("user_id = ?", string(*opts.MemberID))
			query = query.Where("id IN (?)", memberships)
		}

		if err := query.Order("created_at ASC").Find(&teams).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]*model.Team, 0, len(teams))
	for _, t := range teams {
		wrapped = append(wrapped, toTeam(t))
	}

	return wrapped, nil
}

// UpdateTeamOwner implements port.TeamStore.
func (s *Store) UpdateTeamOwner(ctx context.Context, teamID model.TeamID, ownerID model.UserID) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		var membership TeamMember
		if err := db.First(&membership, "team_id = ? AND user_id = ?", string(teamID), string(ownerID)).Error; err != nil {
			return translateError(err)
		}

		result := db.Model(&Team{}).Where("id = ?", string(teamID)).Update("owner_id", string(ownerID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// AddTeamMember implements port.TeamStore.
func (s *Store) AddTeamMember(ctx context.Context, teamID model.TeamID, userID model.UserID) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		position, err := nextPosition(db, &TeamMember{}, "team_id", string(teamID))
		if err != nil {
			return errors.WithStack(err)
		}

		member := &TeamMember{
			TeamID:   string(teamID),
			UserID:   string(userID),
			Position: position,
		}

		if err := db.Omit(clause.Associations).Create(member).Error; err != nil {
			return translateError(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteTeam implements port.TeamStore.
func (s *Store) DeleteTeam(ctx context.Context, teamID model.TeamID) (*port.DeleteReport, error) {
	var report *port.DeleteReport

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		r, err := deleteTeam(db, string(teamID))
		if err != nil {
			return errors.WithStack(err)
		}

		report = r

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return report, nil
}
