// Package collector builds a symbol table out of the declarations found in a
// program, in the order they appear
package collector

import (
	"errors"
	"fmt"

	"github.com/NickyBoy89/classcheck/diagnostic"
	"github.com/NickyBoy89/classcheck/symbol"
	log "github.com/sirupsen/logrus"
)

// ErrNoCurrentClass is the cause of every StructuralError: a member was
// declared before any class was opened
var ErrNoCurrentClass = errors.New("member declared outside of any class")

// StructuralError reports a malformed stream of events. Collection stops at
// the first one
type StructuralError struct {
	// Position of the offending event in the stream, starting at zero
	Index int
	Event Event
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("event %d (%v): %v", e.Index, e.Event, ErrNoCurrentClass)
}

func (e *StructuralError) Unwrap() error {
	return ErrNoCurrentClass
}

// Collector applies declaration events to a symbol table, keeping track of the
// class that member declarations belong to
type Collector struct {
	table  *symbol.Table
	logger log.FieldLogger

	// The class most recently declared, which members are attached to
	currentClass string
	inClass      bool

	// How many events have been applied so far
	applied       int
	redefinitions []diagnostic.Diagnostic
}

// Option configures a Collector
type Option func(c *Collector)

// WithLogger sends the collector's trace records to the given logger, instead
// of the standard logger
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// New creates a collector that populates the given table
func New(table *symbol.Table, options ...Option) *Collector {
	c := &Collector{
		table:  table,
		logger: log.StandardLogger(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Table returns the table being populated
func (c *Collector) Table() *symbol.Table {
	return c.table
}

// CurrentClass returns the class that member declarations are currently
// being attached to
func (c *Collector) CurrentClass() (string, bool) {
	return c.currentClass, c.inClass
}

// Redefinitions returns a diagnostic for every class or interface that was
// declared under a name that was already in use
func (c *Collector) Redefinitions() []diagnostic.Diagnostic {
	return c.redefinitions
}

// Apply records a single event. Events must be applied in the order they
// appear in the source, since the current class depends on it
func (c *Collector) Apply(ev Event) error {
	index := c.applied
	c.applied++

	switch e := ev.(type) {
	case InterfaceDeclared:
		if c.table.DefineInterface(e.Name, e.Methods) {
			c.redefined(e.Name, "interface")
		}
		c.logger.WithFields(log.Fields{
			"interface": e.Name,
			"methods":   e.Methods,
		}).Debug("Interface defined")
	case ClassDeclared:
		c.currentClass = e.Name
		c.inClass = true
		if c.table.DefineClass(e.Name, e.Parent, e.Interfaces) {
			c.redefined(e.Name, "class")
		}
		c.logger.WithFields(log.Fields{
			"class":      e.Name,
			"parent":     e.Parent,
			"interfaces": e.Interfaces,
		}).Debug("Class defined")
	case VariableDeclared:
		if !c.inClass {
			return &StructuralError{Index: index, Event: ev}
		}
		if class, ok := c.table.Class(c.currentClass); ok {
			if previous, declared := class.Visibility(e.Name); declared && previous != e.Visibility {
				c.logger.WithFields(log.Fields{
					"class":      c.currentClass,
					"variable":   e.Name,
					"previous":   previous,
					"visibility": e.Visibility,
				}).Debug("Variable visibility changed")
			}
		}
		if err := c.table.RecordVariable(c.currentClass, e.Name, e.Visibility); err != nil {
			return err
		}
		c.logger.WithFields(log.Fields{
			"class":      c.currentClass,
			"variable":   e.Name,
			"type":       e.Type,
			"visibility": e.Visibility,
		}).Debug("Variable declared")
	case MethodDeclared:
		return c.member(index, ev, e.Name, "Method declared")
	case ConstructorDeclared:
		return c.member(index, ev, e.Name, "Constructor declared")
	case DestructorDeclared:
		return c.member(index, ev, e.Name, "Destructor declared")
	case IntegerOutput:
		c.logger.Infof("Output: %d", e.Value)
	default:
		return fmt.Errorf("unknown event type %T", ev)
	}
	return nil
}

// Collect applies every event in order, stopping at the first error
func (c *Collector) Collect(events []Event) error {
	for _, ev := range events {
		if err := c.Apply(ev); err != nil {
			return err
		}
	}
	return nil
}

// member records a method, constructor, or destructor in the current class.
// They are all kept in the same list
func (c *Collector) member(index int, ev Event, name, message string) error {
	if !c.inClass {
		return &StructuralError{Index: index, Event: ev}
	}
	if err := c.table.RecordMethod(c.currentClass, name); err != nil {
		return err
	}
	c.logger.WithFields(log.Fields{
		"class":  c.currentClass,
		"method": name,
	}).Debug(message)
	return nil
}

func (c *Collector) redefined(name, declaration string) {
	c.logger.WithFields(log.Fields{
		declaration: name,
	}).Warn("Name declared again, discarding its earlier declaration")
	c.redefinitions = append(c.redefinitions, diagnostic.NewRedefinition(name, declaration))
}

// Collect builds a new symbol table from a complete stream of events. The
// redefinitions found along the way are returned with it
func Collect(events []Event, options ...Option) (*symbol.Table, []diagnostic.Diagnostic, error) {
	c := New(symbol.NewTable(), options...)
	if err := c.Collect(events); err != nil {
		return nil, nil, err
	}
	return c.Table(), c.Redefinitions(), nil
}
