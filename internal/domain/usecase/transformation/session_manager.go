package transformation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// SessionConfig bounds the live form sessions
type SessionConfig struct {
	TTL             time.Duration // Idle time before a session is evicted
	MaxSessions     int           // Upper bound on live sessions, zero for no bound
	QueueSize       int           // Commands buffered per session
	JanitorInterval time.Duration // How often idle sessions are swept
}

// CommandFunc runs against a form on the session's worker goroutine
type CommandFunc func(ctx context.Context, form *FormController) error

// SessionManager runs the commands of each form session strictly in order
// on a dedicated worker goroutine and evicts sessions left idle.
type SessionManager struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	config       SessionConfig

	sessions  sync.Map // map[string]*session
	liveCount atomic.Int64
	workers   sync.WaitGroup

	stopChan chan struct{}
	stopOnce sync.Once
	janitor  sync.WaitGroup
}

// session is one form with its command queue
type session struct {
	id       string
	userID   string
	form     *FormController
	queue    chan *command
	closed   chan struct{}
	stopped  chan struct{}
	closer   sync.Once
	lastUsed atomic.Int64 // unix nanoseconds
}

// command is a queued unit of work for a session
type command struct {
	ctx        context.Context
	run        CommandFunc
	resultChan chan error
}

// NewSessionManager creates a new session manager
func NewSessionManager(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	config SessionConfig,
) *SessionManager {
	if config.QueueSize <= 0 {
		config.QueueSize = 16
	}
	if config.TTL <= 0 {
		config.TTL = 30 * time.Minute
	}
	if config.JanitorInterval <= 0 {
		config.JanitorInterval = time.Minute
	}

	return &SessionManager{
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      metrics,
		config:       config,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the idle-session janitor
func (m *SessionManager) Start() {
	ticker := m.timeProvider.NewTicker(coreport.Duration(m.config.JanitorInterval))
	m.janitor.Add(1)
	go func() {
		defer m.janitor.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				m.EvictIdle()
			case <-m.stopChan:
				return
			}
		}
	}()

	m.logger.Info("Session janitor started", map[string]any{
		"ttl":      m.config.TTL.String(),
		"interval": m.config.JanitorInterval.String(),
	})
}

// Open registers a form under sessionID and starts its worker
func (m *SessionManager) Open(sessionID string, form *FormController) error {
	if sessionID == "" || form == nil {
		return errs.ErrInvalidRequest
	}

	live := m.liveCount.Add(1)
	if m.config.MaxSessions > 0 && live > int64(m.config.MaxSessions) {
		m.liveCount.Add(-1)
		m.logger.Warn("Session limit reached", map[string]any{
			"maxSessions": m.config.MaxSessions,
		})
		return errs.ErrTooManySessions
	}

	s := &session{
		id:      sessionID,
		userID:  form.UserID(),
		form:    form,
		queue:   make(chan *command, m.config.QueueSize),
		closed:  make(chan struct{}),
		stopped: make(chan struct{}),
	}
	s.lastUsed.Store(m.timeProvider.Now().UnixNano())

	if _, loaded := m.sessions.LoadOrStore(sessionID, s); loaded {
		m.liveCount.Add(-1)
		return errs.ErrInvalidRequest
	}

	m.workers.Add(1)
	go m.runSession(s)

	m.reportActive()
	m.logger.Debug("Session opened", map[string]any{
		"sessionId": sessionID,
		"userId":    s.userID,
	})
	return nil
}

// Do queues fn on the session and waits for it to finish
func (m *SessionManager) Do(ctx context.Context, userID, sessionID string, fn CommandFunc) error {
	s, err := m.lookup(userID, sessionID)
	if err != nil {
		return err
	}
	s.lastUsed.Store(m.timeProvider.Now().UnixNano())

	cmd := &command{
		ctx:        ctx,
		run:        fn,
		resultChan: make(chan error, 1),
	}

	// Send command to queue
	select {
	case s.queue <- cmd:
	case <-s.closed:
		return errs.ErrSessionNotFound
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing session command", map[string]any{
			"sessionId": sessionID,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}

	// Wait for result
	select {
	case err := <-cmd.resultChan:
		return err
	case <-s.stopped:
		select {
		case err := <-cmd.resultChan:
			return err
		default:
			return errs.ErrSessionNotFound
		}
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for session command", map[string]any{
			"sessionId": sessionID,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// Close discards a session owned by userID
func (m *SessionManager) Close(userID, sessionID string) error {
	s, err := m.lookup(userID, sessionID)
	if err != nil {
		return err
	}
	m.remove(s, "closed")
	return nil
}

// EvictIdle removes sessions that have not been used within the TTL
func (m *SessionManager) EvictIdle() int {
	cutoff := m.timeProvider.Now().Add(-m.config.TTL).UnixNano()
	evicted := 0
	m.sessions.Range(func(_, value any) bool {
		s, ok := value.(*session)
		if ok && s.lastUsed.Load() < cutoff {
			if m.remove(s, "expired") {
				evicted++
			}
		}
		return true
	})
	return evicted
}

// Count returns the number of live sessions
func (m *SessionManager) Count() int {
	return int(m.liveCount.Load())
}

// Shutdown stops the janitor and every session worker
func (m *SessionManager) Shutdown() {
	m.logger.Info("Shutting down session manager", nil)

	m.stopOnce.Do(func() { close(m.stopChan) })
	m.janitor.Wait()

	m.sessions.Range(func(_, value any) bool {
		if s, ok := value.(*session); ok {
			m.remove(s, "shutdown")
		}
		return true
	})

	// Wait for all workers to finish
	m.workers.Wait()
	m.logger.Info("Session manager shut down successfully", nil)
}

func (m *SessionManager) lookup(userID, sessionID string) (*session, error) {
	value, ok := m.sessions.Load(sessionID)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	s, ok := value.(*session)
	if !ok {
		m.logger.Error("Failed to type assert session", nil)
		return nil, errs.ErrInternalServer
	}
	if s.userID != userID {
		return nil, errs.NewAuthorizationError("session", sessionID, userID, s.userID)
	}
	return s, nil
}

// remove unregisters s and signals its worker; it reports whether s was still live
func (m *SessionManager) remove(s *session, reason string) bool {
	if !m.sessions.CompareAndDelete(s.id, s) {
		return false
	}
	m.liveCount.Add(-1)
	s.closer.Do(func() { close(s.closed) })

	m.reportActive()
	m.logger.Debug("Session removed", map[string]any{
		"sessionId": s.id,
		"reason":    reason,
	})
	return true
}

// runSession processes the session's commands sequentially until it is closed
func (m *SessionManager) runSession(s *session) {
	defer m.workers.Done()
	defer close(s.stopped)

	for {
		select {
		case cmd := <-s.queue:
			m.execute(s, cmd)
		case <-s.closed:
			// Reject whatever is still queued
			for {
				select {
				case cmd := <-s.queue:
					cmd.resultChan <- errs.ErrSessionNotFound
				default:
					return
				}
			}
		}
	}
}

func (m *SessionManager) execute(s *session, cmd *command) {
	if err := cmd.ctx.Err(); err != nil {
		cmd.resultChan <- err
		return
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Session command panicked", map[string]any{
				"sessionId": s.id,
				"panic":     r,
			})
			cmd.resultChan <- errs.ErrInternalServer
		}
	}()

	cmd.resultChan <- cmd.run(cmd.ctx, s.form)
	s.lastUsed.Store(m.timeProvider.Now().UnixNano())
}

func (m *SessionManager) reportActive() {
	if m.metrics != nil {
		m.metrics.ActiveSessions(m.Count())
	}
}
