package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/palettes/internal/palettes"
	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

// NewServer registers the server's palette list as an observer of table,
// so db must outlive the server.
func NewServer(
	ctx context.Context,
	cfg Config,
	log logger.Logger,
	db *simpledb.Database,
	table *simpledb.Table[palettes.Palette, string],
) (Server, error) {
	s := newServer(cfg, log, table, db)

	if err := simpledb.AddObserver(ctx, table, s.list); err != nil {
		return nil, errors.WrapFail(err, "observe palettes")
	}

	return s, nil
}

func newServer(cfg Config, log logger.Logger, store paletteStore, reset resetter) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		BodyLimit:               cfg.HTTP.BodyLimit,
		DisableStartupMessage:   true,
		Immutable:               true, // path params are kept by the store past the request
		UnescapePath:            true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodPatch,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorBody(fiberErr.Message))
		}

		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		store: store,
		reset: reset,
		list:  &liveList{},
		http:  fiber.New(fiberCfg),
		addr:  cfg.HTTP.Addr,
		log:   serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	store paletteStore
	reset resetter
	list  *liveList

	// writes serializes mutations: the store does not coordinate
	// concurrent writers itself.
	writes sync.Mutex

	http *fiber.App
	addr string
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/palettes", s.handleList)
	s.http.Get("/palettes/:name", s.handleGet)
	s.http.Post("/palettes", s.handleCreate)
	s.http.Put("/palettes/:name", s.handlePut)
	s.http.Patch("/palettes/:name", s.handlePatch)
	s.http.Delete("/palettes/:name", s.handleDelete)
	s.http.Post("/reset", s.handleReset)
}

// paletteView is a palette plus whether each of its colours is light.
type paletteView struct {
	palettes.Palette
	Light [4]bool `json:"light"`
}

func newView(p palettes.Palette) paletteView {
	v := paletteView{Palette: p}
	for i, hex := range p.Colors() {
		if c, err := palettes.ParseHex(hex); err == nil {
			v.Light[i] = c.IsLight()
		}
	}
	return v
}

func (s *server) handleList(c *fiber.Ctx) error {
	items := s.list.snapshot()

	views := make([]paletteView, 0, len(items))
	for _, p := range items {
		views = append(views, newView(p))
	}

	return c.Status(http.StatusOK).JSON(views)
}

func (s *server) handleGet(c *fiber.Ctx) error {
	p, found, err := s.store.FetchByKey(c.Context(), c.Params("name"))
	if err != nil {
		return errors.WrapFail(err, "fetch palette")
	}
	if !found {
		return s.sendError(c, http.StatusNotFound, "palette not found")
	}

	return c.Status(http.StatusOK).JSON(newView(p))
}

func (s *server) handleCreate(c *fiber.Ctx) error {
	p, ok, err := s.parsePalette(c, "")
	if !ok {
		return err
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	err = s.store.InsertOne(c.Context(), p)
	var dup *simpledb.DuplicateKeyError
	if errors.As(err, &dup) {
		return s.sendError(c, http.StatusConflict, "palette already exists")
	}
	if err != nil {
		return errors.WrapFail(err, "insert palette")
	}

	return c.Status(http.StatusCreated).JSON(newView(p))
}

func (s *server) handlePut(c *fiber.Ctx) error {
	p, ok, err := s.parsePalette(c, c.Params("name"))
	if !ok {
		return err
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	if err := s.store.UpsertOne(c.Context(), p); err != nil {
		return errors.WrapFail(err, "upsert palette")
	}

	return c.Status(http.StatusOK).JSON(newView(p))
}

func (s *server) handlePatch(c *fiber.Ctx) error {
	name := c.Params("name")

	var patch palettes.Palette
	if err := c.BodyParser(&patch); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse patch request"))
		return s.sendError(c, http.StatusBadRequest, "bad patch format")
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	old, found, err := s.store.FetchByKey(c.Context(), name)
	if err != nil {
		return errors.WrapFail(err, "fetch palette")
	}
	if !found {
		return s.sendError(c, http.StatusNotFound, "palette not found")
	}

	p, err := old.Patch(patch).Normalized()
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	err = s.store.UpdateOne(c.Context(), p)
	var notFound *simpledb.NotFoundError
	if errors.As(err, &notFound) {
		return s.sendError(c, http.StatusNotFound, "palette not found")
	}
	if err != nil {
		return errors.WrapFail(err, "update palette")
	}

	return c.Status(http.StatusOK).JSON(newView(p))
}

func (s *server) handleDelete(c *fiber.Ctx) error {
	name := c.Params("name")

	s.writes.Lock()
	defer s.writes.Unlock()

	p, found, err := s.store.FetchByKey(c.Context(), name)
	if err != nil {
		return errors.WrapFail(err, "fetch palette")
	}
	if !found {
		return s.sendError(c, http.StatusNotFound, "palette not found")
	}

	if err := s.store.DeleteOne(c.Context(), p); err != nil {
		return errors.WrapFail(err, "delete palette")
	}

	return c.Status(http.StatusNoContent).Send(nil)
}

func (s *server) handleReset(c *fiber.Ctx) error {
	s.writes.Lock()
	defer s.writes.Unlock()

	if err := s.reset.ResetAll(c.Context()); err != nil {
		return errors.WrapFail(err, "reset store")
	}

	s.log.Infof("store reset by %s", c.IP())
	return c.Status(http.StatusNoContent).Send(nil)
}

// parsePalette reads and normalizes the request body. A non-empty name
// overrides the one in the body. When ok is false the response has been
// produced and err is what the handler should return.
func (s *server) parsePalette(c *fiber.Ctx, name string) (p palettes.Palette, ok bool, err error) {
	if err := c.BodyParser(&p); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal palette payload"))
		return p, false, s.sendError(c, http.StatusBadRequest, "bad json")
	}

	if name != "" {
		p.Name = name
	}

	p, err = p.Normalized()
	if err != nil {
		return p, false, s.sendError(c, http.StatusBadRequest, err.Error())
	}

	return p, true, nil
}

func errorBody(msg string) map[string]string {
	return map[string]string{"status": "ERROR", "message": msg}
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody(msg))
}
