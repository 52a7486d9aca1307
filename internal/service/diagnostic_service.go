package service

import (
	"context"
	"errors"
	"time"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"
	"dbcheck/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// closeTimeout bounds the release of the session on every exit path.
const closeTimeout = 5 * time.Second

var errNoPingResponse = errors.New("server did not acknowledge ping")

type diagnosticService struct {
	connector ports.Connector
	reporter  ports.Reporter
	log       zerolog.Logger
}

// NewDiagnosticService creates the connection diagnostic.
func NewDiagnosticService(
	connector ports.Connector,
	reporter ports.Reporter,
	log zerolog.Logger,
) ports.DiagnosticService {
	return &diagnosticService{
		connector: connector,
		reporter:  reporter,
		log:       log,
	}
}

// run carries the per-invocation state: the report, the logger tagged with
// the run id and the session once opened.
type run struct {
	report  *domain.ConnectionReport
	log     zerolog.Logger
	session ports.Session
	started time.Time
}

func (r *run) transition(state domain.State) {
	r.log.Debug().
		Str("from", string(r.report.State)).
		Str("to", string(state)).
		Dur("elapsed", time.Since(r.started)).
		Msg("state transition")
	r.report.State = state
}

func (s *diagnosticService) Run(ctx context.Context, cfg domain.ConnectionConfig) (*domain.ConnectionReport, error) {
	runID := uuid.NewString()
	r := &run{
		report:  &domain.ConnectionReport{RunID: runID, State: domain.StateIdle},
		log:     s.log.With().Str("run_id", runID).Logger(),
		started: time.Now(),
	}
	defer func() { r.report.Elapsed = time.Since(r.started) }()

	s.reporter.Start()

	r.transition(domain.StateConfiguring)
	if !cfg.HasURI() {
		err := apperror.ErrMissingURI(domain.URIEnvKey)
		r.transition(domain.StateFailed)
		r.log.Error().Err(err).Msg("connection URI missing")
		s.reporter.ConfigurationFailed(err)
		return r.report, err
	}
	s.reporter.URIFound(domain.MaskURI(cfg.URI))

	ep, err := domain.DescribeURI(cfg.URI)
	if err != nil {
		// Unparseable URIs still go to the connector, which owns the
		// authoritative error message.
		r.log.Debug().Err(err).Msg("could not describe connection URI")
	}
	r.log.Info().
		Str("backend", string(ep.Backend)).
		Str("host", ep.Host).
		Int("port", ep.Port).
		Str("database", ep.Database).
		Msg("starting connection diagnostic")

	if err := s.sequence(ctx, r, cfg, ep.Backend); err != nil {
		s.release(ctx, r)
		r.transition(domain.StateFailed)
		r.log.Error().Err(err).Msg("connection diagnostic failed")
		s.reporter.ConnectionFailed(err)
		return r.report, err
	}

	r.transition(domain.StateSucceeded)
	r.report.Elapsed = time.Since(r.started)
	r.log.Info().Dur("elapsed", r.report.Elapsed).Msg("connection diagnostic passed")
	s.reporter.Succeeded(r.report)
	return r.report, nil
}

// sequence runs connect, ping, list and disconnect; each step only starts if
// the previous one succeeded.
func (s *diagnosticService) sequence(ctx context.Context, r *run, cfg domain.ConnectionConfig, backend domain.Backend) error {
	r.transition(domain.StateConnecting)
	s.reporter.Connecting(backend)

	session, err := s.connector.Connect(ctx, cfg)
	if session != nil {
		r.session = session
	}
	if err != nil {
		return apperror.Connection(apperror.StepConnect, err)
	}
	if session == nil {
		return apperror.Connection(apperror.StepConnect, errors.New("connector returned no session"))
	}

	r.report.Info = session.Info()
	r.log.Debug().
		Str("host", r.report.Info.Host).
		Int("port", r.report.Info.Port).
		Str("ready_state", r.report.Info.ReadyState.String()).
		Msg("connected")
	s.reporter.Connected(r.report.Info)

	r.transition(domain.StateProbing)
	s.reporter.Pinging()
	ping, err := session.Ping(ctx)
	if err != nil {
		return apperror.Connection(apperror.StepPing, err)
	}
	if !ping.OK {
		return apperror.Connection(apperror.StepPing, errNoPingResponse)
	}
	r.report.Ping = ping
	s.reporter.Pinged(ping)

	r.transition(domain.StateEnumerating)
	dbs, err := session.ListDatabases(ctx)
	if err != nil {
		return apperror.Connection(apperror.StepListDatabases, err)
	}
	r.report.Databases = dbs

	display := dbs
	if cfg.SortDatabases {
		display = domain.SortDatabasesByName(dbs)
	}
	shown, remaining := domain.TruncateDatabases(display, cfg.Limit())
	r.log.Debug().Int("databases", len(dbs)).Int("shown", len(shown)).Msg("databases listed")
	s.reporter.Databases(shown, remaining, r.report.TotalSize())

	r.transition(domain.StateDisconnecting)
	r.session = nil
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()
	if err := session.Close(closeCtx); err != nil {
		return apperror.Connection(apperror.StepDisconnect, err)
	}
	r.report.Info.ReadyState = domain.ReadyStateDisconnected
	s.reporter.Disconnected()

	return nil
}

// release closes a session left open by a failed step. Close errors are only
// logged: the step failure is what the operator needs to see.
func (s *diagnosticService) release(ctx context.Context, r *run) {
	if r.session == nil {
		return
	}
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()
	if err := r.session.Close(closeCtx); err != nil {
		r.log.Warn().Err(err).Msg("failed to release connection after error")
	}
	r.session = nil
	r.report.Info.ReadyState = domain.ReadyStateDisconnected
}
