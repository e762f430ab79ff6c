package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"weather-mcp-server/internal/weather"
)

const (
	serverName    = "weather-server"
	serverVersion = "1.0.0"

	// CitiesResourceURI identifies the static supported-cities listing.
	CitiesResourceURI = "weather://cities/supported"
)

// Server exposes the weather query operations as MCP tools plus one static
// resource. Every tool failure is rendered as a descriptive text payload, not
// a protocol error: the calling side has no structured-error channel for tool
// results.
type Server struct {
	mcp *server.MCPServer
	svc *weather.Service
	log *zap.SugaredLogger
}

// New builds the MCP server and registers all tools and resources.
func New(svc *weather.Service, log *zap.SugaredLogger) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
		),
		svc: svc,
		log: log,
	}
	s.registerTools()
	s.registerResources()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_current_weather",
		mcp.WithDescription("Get current weather for a specified city, including temperature, conditions, humidity, and wind."),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description(`Name of the city (e.g. "London", "New York", "Tokyo")`),
		),
	), s.handleCurrentWeather)

	s.mcp.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Get a multi-day weather forecast for a specified city."),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description(`Name of the city (e.g. "London", "New York", "Tokyo")`),
		),
		mcp.WithNumber("days",
			mcp.DefaultNumber(weather.DefaultForecastDays),
			mcp.Min(1),
			mcp.Max(7),
			mcp.Description("Number of days to forecast (1-7, default: 3)"),
		),
	), s.handleForecast)

	s.mcp.AddTool(mcp.NewTool("get_weather_alerts",
		mcp.WithDescription("Get active weather alerts and warnings for a specified city."),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description(`Name of the city (e.g. "London", "New York", "Tokyo")`),
		),
	), s.handleAlerts)

	s.mcp.AddTool(mcp.NewTool("get_supported_cities",
		mcp.WithDescription("List the cities supported for weather queries."),
	), s.handleSupportedCities)
}

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(CitiesResourceURI, "Supported Cities",
		mcp.WithResourceDescription("List of supported cities with their coordinates and query names."),
		mcp.WithMIMEType("text/plain"),
	), s.handleCitiesResource)
}

func (s *Server) handleCurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()

	city, err := req.RequireString("city")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}

	s.log.Infow("tool call", "tool", "get_current_weather", "call_id", callID, "city", city)
	text, err := s.svc.CurrentWeather(ctx, city)
	return s.finish("get_current_weather", callID, text, err), nil
}

func (s *Server) handleForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()

	city, err := req.RequireString("city")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}

	days, ok := daysArgument(req)
	if !ok {
		return mcp.NewToolResultText(weather.InvalidDaysError().Error()), nil
	}

	s.log.Infow("tool call", "tool", "get_forecast", "call_id", callID, "city", city, "days", days)
	text, err := s.svc.Forecast(ctx, city, days)
	return s.finish("get_forecast", callID, text, err), nil
}

func (s *Server) handleAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()

	city, err := req.RequireString("city")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}

	s.log.Infow("tool call", "tool", "get_weather_alerts", "call_id", callID, "city", city)
	text, err := s.svc.Alerts(ctx, city)
	return s.finish("get_weather_alerts", callID, text, err), nil
}

func (s *Server) handleSupportedCities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Infow("tool call", "tool", "get_supported_cities", "call_id", uuid.NewString())
	return mcp.NewToolResultText(s.svc.SupportedCities()), nil
}

func (s *Server) handleCitiesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.log.Infow("resource read", "uri", req.Params.URI)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CitiesResourceURI,
			MIMEType: "text/plain",
			Text:     s.svc.SupportedCities(),
		},
	}, nil
}

// daysArgument coerces the optional days argument. JSON numbers arrive as
// float64; fractional values are rejected rather than truncated. A missing
// argument uses the default.
func daysArgument(req mcp.CallToolRequest) (int, bool) {
	raw, exists := req.GetArguments()["days"]
	if !exists || raw == nil {
		return weather.DefaultForecastDays, true
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// finish flattens a service result into the single-string tool payload.
func (s *Server) finish(tool, callID, text string, err error) *mcp.CallToolResult {
	if err != nil {
		s.log.Warnw("tool call failed", "tool", tool, "call_id", callID, "error", err)
		return mcp.NewToolResultText(errorText(err))
	}
	return mcp.NewToolResultText(text)
}

// errorText renders any service error as prose. Validation and upstream errors
// already carry their message; anything else becomes a generic error string so
// the always-returns-a-string contract holds.
func errorText(err error) string {
	var verr *weather.ValidationError
	var uerr *weather.UpstreamError
	if errors.As(err, &verr) || errors.As(err, &uerr) {
		return err.Error()
	}
	return fmt.Sprintf("Error: unexpected failure: %v", err)
}

// ServeStdio runs the MCP protocol over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns the streamable-HTTP transport for mounting into an HTTP
// server.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}
