package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
	"github.com/jhoicas/inventario-storage/pkg/logger"
)

// DefaultKey clave bajo la que se guarda el documento si no se indica otra.
const DefaultKey = "inventarioApp"

// Engine es el dueño exclusivo del documento de inventario. Cada operación lee el documento
// completo del DocumentStore; las mutaciones lo reescriben completo en una sola escritura.
type Engine struct {
	store    repository.DocumentStore
	key      string
	log      *logger.Logger
	now      func() time.Time
	loc      *time.Location
	validate *validator.Validate

	allowNegativeAdjust bool
	demoData            bool

	mu sync.RWMutex
}

// Option configura el Engine.
type Option func(*Engine)

// WithKey cambia la clave del documento.
func WithKey(key string) Option { return func(e *Engine) { e.key = key } }

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option { return func(e *Engine) { e.log = l } }

// WithClock fija el reloj (tests).
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// WithLocation zona horaria usada al formatear fechas del CSV.
func WithLocation(loc *time.Location) Option { return func(e *Engine) { e.loc = loc } }

// WithNegativeAdjustments permite ajustes con cantidad negativa; el stock resultante se recorta a 0.
func WithNegativeAdjustments(allow bool) Option {
	return func(e *Engine) { e.allowNegativeAdjust = allow }
}

// WithDemoData siembra usuarios, categorías, productos y movimientos de ejemplo al inicializar.
func WithDemoData(enabled bool) Option { return func(e *Engine) { e.demoData = enabled } }

// NewEngine construye el motor sobre store.
func NewEngine(store repository.DocumentStore, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		key:      DefaultKey,
		log:      logger.Nop(),
		now:      time.Now,
		loc:      time.Local,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize escribe el documento inicial si la clave todavía no existe.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.store.Get(ctx, e.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("leer documento: %w", err)
	}

	doc := entity.NewDocument()
	if e.demoData {
		doc = demoDocument(e.now())
	}
	if err := e.persist(ctx, doc); err != nil {
		return err
	}
	e.log.Info().
		Str("key", e.key).
		Bool("demo", e.demoData).
		Msg("documento de inventario inicializado")
	return nil
}

// load lee y decodifica el documento. Una clave ausente equivale a un documento vacío.
func (e *Engine) load(ctx context.Context) (*entity.Document, error) {
	data, err := e.store.Get(ctx, e.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return entity.NewDocument(), nil
		}
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	return entity.UnmarshalDocument(data)
}

func (e *Engine) persist(ctx context.Context, doc *entity.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := e.store.Put(ctx, e.key, data); err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	return nil
}

// read ejecuta fn sobre una copia recién leída del documento.
func (e *Engine) read(ctx context.Context, fn func(doc *entity.Document) error) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	doc, err := e.load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// mutate lee, aplica fn y persiste el documento completo. Si fn falla no se escribe nada.
func (e *Engine) mutate(ctx context.Context, fn func(doc *entity.Document) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc, err := e.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return e.persist(ctx, doc)
}

// validateStruct aplica las etiquetas validate y envuelve el fallo en ErrInvalidInput.
func (e *Engine) validateStruct(v any) error {
	if err := e.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}
