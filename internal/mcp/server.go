// Package mcp exposes route generation as a Model Context Protocol tool.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/generator"
	"github.com/modu-ai/routegen/internal/routes"
	"github.com/modu-ai/routegen/pkg/models"
	"github.com/modu-ai/routegen/pkg/routegen"
	"github.com/modu-ai/routegen/pkg/version"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "routegen"

// Server wraps the MCP server with the routegen tools.
type Server struct {
	mcpServer *server.MCPServer
	baseDir   string
	logger    *slog.Logger
}

// NewServer creates an MCP server. Relative output folders and route files
// named by tool calls resolve against baseDir.
func NewServer(baseDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{baseDir: baseDir, logger: logger}

	mcpServer := server.NewMCPServer(
		ServerName,
		version.GetVersion(),
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	generateTool := mcp.NewTool("generate_routes",
		mcp.WithDescription("Create page stub files (Vue, JSX or TSX) for every route of a route tree. Existing files are never overwritten."),
		mcp.WithString("output_folder",
			mcp.Required(),
			mcp.Description("Folder the stub tree is written to"),
		),
		mcp.WithArray("routes",
			mcp.Description("Route tree: objects with name, path and optional children"),
			mcp.Items(map[string]any{"type": "object"}),
		),
		mcp.WithString("routes_file",
			mcp.Description("JSON or YAML file holding the route tree, used when routes is omitted"),
		),
		mcp.WithString("select",
			mcp.Description("JSONPath selecting the route array inside routes_file (default: $)"),
		),
		mcp.WithObject("options",
			mcp.Description("Generation options: name, path, children, parentFolder, fileSuffix, isVue3, cssCompiler, isTypeScript, isIndex, content, concurrency"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Return the planned files without writing them"),
		),
	)
	mcpServer.AddTool(generateTool, s.handleGenerate)
}

// handleGenerate handles the generate_routes tool invocation.
func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := request.RequireString("output_folder")
	if err != nil {
		return mcp.NewToolResultError("output_folder is required"), nil
	}

	args := request.GetArguments()
	rawOpts, _ := args["options"].(map[string]any)
	opts, err := config.Resolve(rawOpts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nodes, err := s.routeNodes(args, request.GetString("routes_file", ""), request.GetString("select", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := routes.ValidateShape(nodes, opts.Fields); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	gen := routegen.NewDiskGeneratorAt(s.baseDir, out, generator.WithLogger(s.logger))

	plan, err := gen.Plan(nodes, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if request.GetBool("dry_run", false) {
		return jsonResult(planView(plan))
	}

	report, err := gen.Execute(ctx, plan)
	if err != nil {
		s.logger.Error("generate_routes interrupted", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("generation interrupted: %v", err)), nil
	}
	return jsonResult(report)
}

func (s *Server) routeNodes(args map[string]any, file, selector string) ([]models.RouteNode, error) {
	if raw, ok := args["routes"]; ok && raw != nil {
		nodes, ok := models.AsRouteNodes(raw)
		if !ok {
			return nil, fmt.Errorf("%w: routes must be an array", routes.ErrInvalidDocument)
		}
		return nodes, nil
	}
	if file == "" {
		return nil, fmt.Errorf("either routes or routes_file is required")
	}
	return routes.LoadFile(s.resolve(file), selector)
}

func (s *Server) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.baseDir, p)
}

type plannedFile struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

func planView(plan *generator.Plan) []plannedFile {
	files := make([]plannedFile, len(plan.Entries))
	for i, e := range plan.Entries {
		action := "write"
		switch {
		case e.Err != nil:
			action = "fail: " + e.Err.Error()
		case e.Duplicate:
			action = "skip: duplicate"
		}
		files[i] = plannedFile{Path: e.Target, Name: e.Name, Action: action}
	}
	return files
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP requests on stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
