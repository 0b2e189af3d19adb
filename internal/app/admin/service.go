package admin

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/logging"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
)

// Operation names used in logs and metrics.
const (
	OpUpdateInfo       = "update_info"
	OpUpsertTeam       = "upsert_team"
	OpUpdateTeamStats  = "update_team_stats"
	OpUpdateTeamLogo   = "update_team_logo"
	OpDeleteTeam       = "delete_team"
	OpUpsertRegulation = "upsert_regulation"
	OpDeleteRegulation = "delete_regulation"
	OpUpsertChampion   = "upsert_champion"
	OpCreateMatch      = "create_match"
	OpUpdateMatch      = "update_match"
	OpUploadImage      = "upload_image"
	OpRefresh          = "refresh"
)

// Upstream is the write side of the league-data API.
type Upstream interface {
	Put(ctx context.Context, password string, kind league.MutationKind, payload any) error
	Delete(ctx context.Context, password string, kind league.MutationKind, id int) error
	CreateMatch(ctx context.Context, password string, m league.MatchCreate) (int, error)
	UpdateMatch(ctx context.Context, password string, m league.MatchUpdate) error
	UploadImage(ctx context.Context, password, filename string, file io.Reader) (string, error)
}

// Refresher refetches the full snapshot after a write.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service validates admin writes, forwards them upstream with the caller's
// password and refetches the league afterwards.
type Service struct {
	upstream  Upstream
	refresher Refresher
	validator *validator.Validate
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewService constructs an admin Service.
func NewService(upstream Upstream, refresher Refresher, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		upstream:  upstream,
		refresher: refresher,
		validator: newValidator(),
		logger:    logger,
		metrics:   recorder,
	}
}

// UpdateInfo replaces the league landing-page content.
func (s *Service) UpdateInfo(ctx context.Context, password string, in league.InfoUpdate) error {
	return s.mutate(ctx, OpUpdateInfo, 0, in, func() error {
		return s.upstream.Put(ctx, password, league.KindInfo, in)
	})
}

// UpsertTeam creates or edits a team. New teams land in the first division unless told otherwise.
func (s *Service) UpsertTeam(ctx context.Context, password string, in league.TeamUpsert) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == 0 && strings.TrimSpace(in.Division) == "" {
		in.Division = league.DivisionFirst
	}
	return s.mutate(ctx, OpUpsertTeam, in.ID, in, func() error {
		return s.upstream.Put(ctx, password, league.KindTeam, in)
	})
}

// UpdateTeamStats overwrites a team's season counters.
func (s *Service) UpdateTeamStats(ctx context.Context, password string, in league.TeamStatsUpdate) error {
	return s.mutate(ctx, OpUpdateTeamStats, in.ID, in, func() error {
		return s.upstream.Put(ctx, password, league.KindTeamStats, in)
	})
}

// UpdateTeamLogo points a team at a new logo URL.
func (s *Service) UpdateTeamLogo(ctx context.Context, password string, in league.TeamLogoUpdate) error {
	return s.mutate(ctx, OpUpdateTeamLogo, in.TeamID, in, func() error {
		return s.upstream.Put(ctx, password, league.KindTeamLogo, in)
	})
}

// DeleteTeam removes a team.
func (s *Service) DeleteTeam(ctx context.Context, password string, id int) error {
	return s.remove(ctx, OpDeleteTeam, password, league.KindTeam, id)
}

// UpsertRegulation creates or edits a regulation. New entries without a position go last.
func (s *Service) UpsertRegulation(ctx context.Context, password string, in league.RegulationUpsert) error {
	if in.ID == 0 && in.Position == nil {
		pos := league.DefaultRegulationPosition
		in.Position = &pos
	}
	return s.mutate(ctx, OpUpsertRegulation, in.ID, in, func() error {
		return s.upstream.Put(ctx, password, league.KindRegulation, in)
	})
}

// DeleteRegulation removes a regulation.
func (s *Service) DeleteRegulation(ctx context.Context, password string, id int) error {
	return s.remove(ctx, OpDeleteRegulation, password, league.KindRegulation, id)
}

// UpsertChampion creates or edits a champion entry.
func (s *Service) UpsertChampion(ctx context.Context, password string, in league.ChampionUpsert) error {
	return s.mutate(ctx, OpUpsertChampion, in.ID, in, func() error {
		return s.upstream.Put(ctx, password, league.KindChampion, in)
	})
}

// CreateMatch schedules a match with a zero score and returns its id.
func (s *Service) CreateMatch(ctx context.Context, password string, in league.MatchCreate) (int, error) {
	in.Status = league.StatusScheduled
	in.HomeScore, in.AwayScore = 0, 0

	var id int
	err := s.mutate(ctx, OpCreateMatch, 0, in, func() error {
		var err error
		id, err = s.upstream.CreateMatch(ctx, password, in)
		return err
	})
	return id, err
}

// UpdateMatch records a score, status or date change.
func (s *Service) UpdateMatch(ctx context.Context, password string, in league.MatchUpdate) error {
	return s.mutate(ctx, OpUpdateMatch, in.ID, in, func() error {
		return s.upstream.UpdateMatch(ctx, password, in)
	})
}

// UploadImage stores an image upstream and returns its public URL.
// Uploads do not change league data, so no refetch follows.
func (s *Service) UploadImage(ctx context.Context, password, filename string, file io.Reader) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", s.fail(ctx, OpUploadImage, 0, invalid("file name is required"))
	}
	url, err := s.upstream.UploadImage(ctx, password, filename, file)
	s.metrics.RecordAdminMutation(OpUploadImage, err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "admin upload failed",
			logging.FieldOperation, OpUploadImage, "error", err)
		return "", err
	}
	return url, nil
}

// Refresh refetches the league without changing anything upstream.
func (s *Service) Refresh(ctx context.Context) error {
	err := s.refresher.Refresh(ctx)
	s.metrics.RecordAdminMutation(OpRefresh, err)
	return err
}

func (s *Service) remove(ctx context.Context, op, password string, kind league.MutationKind, id int) error {
	if id <= 0 {
		return s.fail(ctx, op, id, invalid("id must be positive"))
	}
	return s.mutate(ctx, op, id, nil, func() error {
		return s.upstream.Delete(ctx, password, kind, id)
	})
}

// mutate validates payload (when not nil), runs send, and refetches on success.
// A failed refetch is logged only: the write already landed upstream.
func (s *Service) mutate(ctx context.Context, op string, id int, payload any, send func() error) error {
	if payload != nil {
		if err := s.validate(ctx, payload); err != nil {
			return s.fail(ctx, op, id, err)
		}
	}
	if err := send(); err != nil {
		return s.fail(ctx, op, id, err)
	}
	s.metrics.RecordAdminMutation(op, nil)

	logger := logging.FromContext(ctx, s.logger)
	logging.Info(logger, "admin mutation applied", logging.FieldOperation, op, logging.FieldEntityID, id)

	if err := s.refresher.Refresh(ctx); err != nil {
		logging.Warn(logger, "refetch after admin mutation failed",
			logging.FieldOperation, op, "error", err)
	}
	return nil
}

func (s *Service) fail(ctx context.Context, op string, id int, err error) error {
	s.metrics.RecordAdminMutation(op, err)
	logging.Warn(logging.FromContext(ctx, s.logger), "admin mutation rejected",
		logging.FieldOperation, op, logging.FieldEntityID, id, "error", err)
	return err
}
