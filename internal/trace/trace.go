// Package trace wires OpenTelemetry tracing for dropdown transitions.
package trace

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used by the dropdown controller.
const InstrumentationName = "cleanselect/dropdown"

// Span names, one per controller transition.
const (
	SpanOpen     = "dropdown.open"
	SpanClose    = "dropdown.close"
	SpanSelect   = "dropdown.select"
	SpanRelayout = "dropdown.relayout"
	SpanUnmount  = "dropdown.unmount"
)

// Attribute keys, all under the cleanselect.* namespace.
const (
	AnchorKey     = attribute.Key("cleanselect.anchor.id")
	OverlayKey    = attribute.Key("cleanselect.overlay.id")
	MobileKey     = attribute.Key("cleanselect.mobile")
	SearchLenKey  = attribute.Key("cleanselect.search.length")
	ValueKey      = attribute.Key("cleanselect.value")
	VisibleRowKey = attribute.Key("cleanselect.rows.visible")
	ThemeKey      = attribute.Key("cleanselect.theme")
	ReasonKey     = attribute.Key("cleanselect.close.reason")
)

// Tracer returns the tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(InstrumentationName)
}
