package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
	RecordPacketSent("fms")
	RecordPacketReceived("robot")
	RecordParseFailure("robot")
	SetCommsUp("radio", false)
	SetCommsUp("radio", true)
}
