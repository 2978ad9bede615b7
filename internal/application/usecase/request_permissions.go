package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/logging"
)

// DefaultPermissionDeniedMessage is shown when the user refuses a capability.
const DefaultPermissionDeniedMessage = "Permission denied. The app needs this permission to function properly."

type permissionWaiter struct {
	types []entity.PermissionType
	done  func(entity.PermissionState)
}

// PermissionGate owns the PermissionState of the shell. It asks the user for
// capabilities that are not granted yet, remembers the answer and tells the
// user when something was refused. It never blocks startup.
type PermissionGate struct {
	permRepo      repository.PermissionRepository
	dialog        port.PermissionDialogPresenter
	notifier      port.Notifier
	origin        string
	deniedMessage string
	now           func() time.Time

	loadOnce  sync.Once
	mu        sync.Mutex
	state     entity.PermissionState
	prompting bool
	waiters   []permissionWaiter
}

// PermissionGateOption configures a PermissionGate.
type PermissionGateOption func(*PermissionGate)

// WithDeniedMessage overrides DefaultPermissionDeniedMessage.
func WithDeniedMessage(msg string) PermissionGateOption {
	return func(g *PermissionGate) {
		if msg != "" {
			g.deniedMessage = msg
		}
	}
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) PermissionGateOption {
	return func(g *PermissionGate) { g.now = now }
}

// NewPermissionGate creates a gate for origin. permRepo may be nil, in which
// case decisions only live for the current launch.
func NewPermissionGate(
	permRepo repository.PermissionRepository,
	dialog port.PermissionDialogPresenter,
	notifier port.Notifier,
	origin string,
	opts ...PermissionGateOption,
) *PermissionGate {
	g := &PermissionGate{
		permRepo:      permRepo,
		dialog:        dialog,
		notifier:      notifier,
		origin:        origin,
		deniedMessage: DefaultPermissionDeniedMessage,
		now:           time.Now,
		state:         make(entity.PermissionState),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Origin returns the origin decisions are recorded under.
func (g *PermissionGate) Origin() string {
	return g.origin
}

// State returns a copy of the current permission state.
func (g *PermissionGate) State(ctx context.Context) entity.PermissionState {
	g.load(ctx)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// Granted reports whether every type is currently granted.
func (g *PermissionGate) Granted(ctx context.Context, types ...entity.PermissionType) bool {
	g.load(ctx)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Granted(types...)
}

// RequestPermissions makes sure the user was asked for every type. When
// all of them are already granted done runs immediately; otherwise the
// dialog is shown for the ungranted subset and done runs once it is
// answered. A request arriving while a dialog is open waits for that
// dialog instead of opening a second one, and is prompted afterwards for
// whatever that dialog did not cover.
func (g *PermissionGate) RequestPermissions(
	ctx context.Context,
	types []entity.PermissionType,
	done func(entity.PermissionState),
) {
	log := logging.FromContext(ctx).With().
		Str("component", "permission-gate").
		Strs("types", entity.PermissionTypesToStrings(types)).
		Logger()

	g.load(ctx)

	g.mu.Lock()
	ungranted := g.state.Ungranted(types)
	if len(ungranted) == 0 {
		snapshot := g.state.Clone()
		g.mu.Unlock()
		log.Debug().Msg("all permissions already granted")
		if done != nil {
			done(snapshot)
		}
		return
	}

	g.waiters = append(g.waiters, permissionWaiter{types: types, done: done})
	if g.prompting {
		g.mu.Unlock()
		log.Debug().Msg("permission dialog already open, request joins it")
		return
	}
	g.prompting = true
	dialog := g.dialog
	g.mu.Unlock()

	if dialog == nil {
		log.Warn().Msg("no permission dialog available, denying")
		g.complete(ctx, ungranted, port.PermissionDialogResult{})
		return
	}

	log.Info().Strs("prompt", entity.PermissionTypesToStrings(ungranted)).Msg("prompting for permissions")
	dialog.ShowPermissionDialog(ctx, g.origin, ungranted, func(result port.PermissionDialogResult) {
		g.complete(ctx, ungranted, result)
	})
}

func (g *PermissionGate) complete(ctx context.Context, asked []entity.PermissionType, result port.PermissionDialogResult) {
	log := logging.FromContext(ctx)

	decisions := make(map[entity.PermissionType]entity.PermissionDecision, len(asked))
	anyDenied := false
	for _, t := range asked {
		decisions[t] = result.DecisionFor(t)
		if decisions[t] != entity.PermissionGranted {
			anyDenied = true
		}
	}

	g.mu.Lock()
	for t, d := range decisions {
		g.state[t] = d
	}
	waiters := g.waiters
	g.waiters = nil
	g.prompting = false
	snapshot := g.state.Clone()
	g.mu.Unlock()

	log.Info().
		Strs("types", entity.PermissionTypesToStrings(asked)).
		Strs("denied", deniedTypes(asked, decisions)).
		Bool("persistent", result.Persistent).
		Msg("permission dialog answered")

	if result.Persistent {
		g.persist(ctx, asked, decisions)
	}

	if anyDenied && g.notifier != nil {
		g.notifier.Show(ctx, g.deniedMessage, port.NotificationWarning, 0)
	}

	for _, w := range waiters {
		if missing := notAsked(snapshot.Ungranted(w.types), asked); len(missing) > 0 {
			log.Debug().Strs("types", entity.PermissionTypesToStrings(missing)).Msg("prompting for types the closed dialog did not cover")
			g.RequestPermissions(ctx, missing, w.done)
			continue
		}
		if w.done != nil {
			w.done(snapshot.Clone())
		}
	}
}

func notAsked(types, asked []entity.PermissionType) []entity.PermissionType {
	var out []entity.PermissionType
	for _, t := range types {
		if !slices.Contains(asked, t) {
			out = append(out, t)
		}
	}
	return out
}

func deniedTypes(asked []entity.PermissionType, decisions map[entity.PermissionType]entity.PermissionDecision) []string {
	var out []string
	for _, t := range asked {
		if decisions[t] != entity.PermissionGranted {
			out = append(out, string(t))
		}
	}
	return out
}

// load seeds the state from stored records once. A failing repository
// leaves the state empty, which only means the user is asked again.
func (g *PermissionGate) load(ctx context.Context) {
	g.loadOnce.Do(func() {
		if g.permRepo == nil {
			return
		}
		log := logging.FromContext(ctx)

		records, err := g.permRepo.GetAll(ctx, g.origin)
		if err != nil {
			log.Warn().Err(err).Str("origin", g.origin).Msg("failed to load stored permissions")
			return
		}

		g.mu.Lock()
		defer g.mu.Unlock()
		for _, r := range records {
			if r == nil || !entity.CanPersist(r.Type) {
				continue
			}
			if _, ok := g.state[r.Type]; !ok {
				g.state[r.Type] = r.Decision
			}
		}
		log.Debug().Int("records", len(records)).Msg("stored permissions loaded")
	})
}

func (g *PermissionGate) persist(
	ctx context.Context,
	types []entity.PermissionType,
	decisions map[entity.PermissionType]entity.PermissionDecision,
) {
	if g.permRepo == nil {
		return
	}
	log := logging.FromContext(ctx)

	for _, permType := range types {
		if !entity.CanPersist(permType) {
			continue
		}

		decision := decisions[permType]
		record := &entity.PermissionRecord{
			Origin:    g.origin,
			Type:      permType,
			Decision:  decision,
			UpdatedAt: g.now().Unix(),
		}

		if err := g.permRepo.Set(ctx, record); err != nil {
			log.Warn().
				Err(err).
				Str("perm_type", string(permType)).
				Str("decision", string(decision)).
				Msg("failed to persist permission")
		}
	}
}
