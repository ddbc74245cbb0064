package prefixid

import "github.com/google/uuid"

// Handler receives the UUID of an id whose prefix it is registered for.
type Handler[T any] func(uuid.UUID) (T, error)

// Route parses id and calls the handler registered for its prefix. A
// malformed id or an unregistered prefix returns ok == false and no error;
// only the handler's own error is returned.
func Route[T any](g *Generator, id string, handlers map[string]Handler[T]) (result T, ok bool, err error) {
	parsed, perr := g.Parse(id)
	if perr != nil {
		return result, false, nil
	}
	h, found := handlers[parsed.Prefix]
	if !found {
		return result, false, nil
	}
	result, err = h(parsed.UUID)
	return result, true, err
}
