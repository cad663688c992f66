package mercato

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/mercato")
