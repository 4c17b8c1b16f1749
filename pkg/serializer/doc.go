// Copyright (c) 2025, Lyric Atlas authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer provides encoding and decoding of lyric data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between lyric result structures and
// various output formats including JSON, YAML, and human-readable tables. It also
// provides the HTTP plumbing shared by the gateway and the CLI: a buffered JSON
// responder for handlers and a configurable reader for outbound fetches from the
// lyric-data service.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, pretty-printed with two-space indentation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value representation
//   - Suitable for terminal/console viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout:
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := writer.Serialize(ctx, result); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer writer.(serializer.Closer).Close()
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// # Usage - Decoding
//
// Read from a file with automatic format detection:
//
//	ids, err := serializer.FromFile[[]string]("ids.yaml")
//
// Read from any io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatJSON, resp.Body)
//	if err != nil {
//	    return err
//	}
//	var result lyrics.Result
//	err = reader.Deserialize(&result)
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # Resource Management
//
// Always close serializers and readers that manage files. Stdout-based
// writers don't require closing but Close() is safe to call.
//
// # Integration
//
// Used throughout Lyric Atlas for data I/O:
//   - pkg/cli - Command output formatting
//   - pkg/gateway - HTTP response encoding
//   - pkg/lyrics - Outbound fetches from the lyric-data service
package serializer
