package renderer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// SymbolResolver maps a see-also symbol to the URL its link should point at.
type SymbolResolver interface {
	Resolve(ctx context.Context, symbol string) (string, error)
}

// URLKitResolverOptions configures the go-urlkit backed symbol resolver.
type URLKitResolverOptions struct {
	Manager     *urlkit.RouteManager
	Group       string
	Route       string
	SymbolParam string
}

// URLKitResolver resolves symbol URLs through a go-urlkit RouteManager, for
// previews that link into an external API reference site.
type URLKitResolver struct {
	manager     *urlkit.RouteManager
	group       string
	route       string
	symbolParam string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

var _ SymbolResolver = (*URLKitResolver)(nil)

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.SymbolParam == "" {
		opts.SymbolParam = "symbol"
	}
	return &URLKitResolver{
		manager:     opts.Manager,
		group:       strings.TrimSpace(opts.Group),
		route:       strings.TrimSpace(opts.Route),
		symbolParam: opts.SymbolParam,
		groupCache:  make(map[string]*urlkit.Group),
	}
}

// Resolve builds the symbol's URL using the configured route manager.
func (r *URLKitResolver) Resolve(ctx context.Context, symbol string) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil || r.group == "" || r.route == "" {
		return "", nil
	}

	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}
	builder.WithParam(r.symbolParam, symbol)

	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return url, nil
}

// groupForPath walks a dot separated group path, caching the result.
func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("renderer: invalid route group path %q", path)
	}

	current, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("renderer: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("renderer: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("renderer: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
