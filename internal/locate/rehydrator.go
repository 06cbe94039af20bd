package locate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/apps"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/session"
	"github.com/uiscout/uiscout/internal/tree"
)

// Tolerance is the maximum Euclidean distance, in points, between a stored
// frame origin and a live node's frame origin for the node to count as the
// same element. The UI may have been redrawn or rearranged between capture
// and interaction; beyond this distance we refuse to guess.
const Tolerance = 10.0

// Rehydrator turns a stored element description back into a live handle.
// Live accessibility handles are not transferable across process boundaries,
// so every interaction re-resolves the application and re-matches the element
// by role, title, and position against the current tree.
type Rehydrator struct {
	enum     apps.Enumerator
	resolver *apps.Resolver
	backend  platform.Backend
	walker   *tree.Walker
	log      *zap.Logger
}

// NewRehydrator wires a rehydrator from its collaborators.
func NewRehydrator(enum apps.Enumerator, resolver *apps.Resolver, backend platform.Backend, walker *tree.Walker, log *zap.Logger) *Rehydrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rehydrator{enum: enum, resolver: resolver, backend: backend, walker: walker, log: log}
}

// Rehydrate re-locates the live node for a stored element. It is a single
// bounded search, not a retry loop: if the current tree holds no node with
// the stored role and title within Tolerance of the stored position, the
// element is reported stale rather than approximated.
func (r *Rehydrator) Rehydrate(sess *session.Session, shortID string) (tree.Node, error) {
	stored, ok := sess.UIMap[shortID]
	if !ok {
		return nil, &ElementNotFoundError{SessionID: sess.ID, ElementID: shortID}
	}

	candidates, err := r.enum.Candidates()
	if err != nil {
		return nil, &StaleElementError{
			SessionID: sess.ID, ElementID: shortID,
			Reason: fmt.Sprintf("process enumeration failed: %v", err),
		}
	}
	candidate, err := r.resolver.Resolve(sess.ApplicationName, candidates)
	if err != nil {
		return nil, &StaleElementError{
			SessionID: sess.ID, ElementID: shortID,
			Reason: fmt.Sprintf("application %q is no longer resolvable: %v", sess.ApplicationName, err),
		}
	}

	roots, err := r.backend.AppNodes(candidate.PID)
	if err != nil {
		return nil, &StaleElementError{
			SessionID: sess.ID, ElementID: shortID,
			Reason: fmt.Sprintf("cannot read UI tree of %q (pid %d): %v", candidate.Name, candidate.PID, err),
		}
	}

	result := r.walker.Walk(roots)

	bestID := ""
	bestDist := Tolerance
	for id, el := range result.Elements {
		if el.Role != stored.Role || el.Title != stored.Title {
			continue
		}
		if d := el.Frame.OriginDistance(stored.Frame); d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	if bestID == "" {
		return nil, &StaleElementError{
			SessionID: sess.ID, ElementID: shortID,
			Reason: "no live element matches the stored role, title, and position",
		}
	}

	node, _ := result.Handle(bestID)
	r.log.Debug("rehydrated element",
		zap.String("session", sess.ID),
		zap.String("element", shortID),
		zap.String("liveId", bestID),
		zap.Float64("distance", bestDist))
	return node, nil
}
