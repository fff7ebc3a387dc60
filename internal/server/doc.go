// Package server exposes the store-art operations as MCP (Model Context
// Protocol) tools, so an assistant can list screenshot sizes and build
// feature graphics on the user's behalf.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - screenshot_dimensions: width and height of each matching screenshot
//   - feature_graphic: cover-crop and resize a screenshot into a banner
//
// Arguments a caller omits fall back to the configuration the server was
// started with.
//
// # Error Codes
//
//   - -32601: Method not found
//   - -32602: Invalid params
//   - -32000: Tool execution failed (message carries the cause)
package server
