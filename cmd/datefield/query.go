// Copyright 2026 Roxy Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/shell"
	"zombiezen.com/go/sqlite/sqlitex"
)

type queryOptions struct {
	*globalConfig

	dbPath string
	query  string
	format outputFormat
}

func newQueryCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "query [flags] SQL",
		Short:         "Run SQL with the datefield functions",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts := &queryOptions{globalConfig: g}
	c.Flags().StringVar(&opts.dbPath, "db", "", "`path` to database (default in-memory)")
	registerOutputFormatFlagVar(c, &opts.format)
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.query = args[0]
		return runQuery(cmd.Context(), opts)
	}
	return c
}

func runQuery(ctx context.Context, opts *queryOptions) error {
	db, err := opts.openDB(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer closeConn(ctx, db)

	w := newRowWriter(os.Stdout, opts.format)
	err = sqlitex.ExecuteTransient(db, opts.query, &sqlitex.ExecOptions{
		ResultFunc: w.write,
	})
	if err != nil {
		return err
	}
	return w.flush()
}

// rowWriter writes query results in an [outputFormat].
type rowWriter struct {
	format outputFormat
	w      io.Writer
	csv    *csv.Writer
	json   *jsontext.Encoder

	wroteHeader bool
}

func newRowWriter(w io.Writer, format outputFormat) *rowWriter {
	rw := &rowWriter{format: format, w: w}
	switch format {
	case csvOutputFormat:
		rw.csv = csv.NewWriter(w)
	case jsonOutputFormat:
		rw.json = jsontext.NewEncoder(w)
	}
	return rw
}

func (rw *rowWriter) write(stmt *sqlite.Stmt) error {
	n := stmt.ColumnCount()
	switch rw.format {
	case plainOutputFormat:
		row := make([]string, n)
		for i := range row {
			row[i] = stmt.ColumnText(i)
		}
		_, err := fmt.Fprintln(rw.w, strings.Join(row, "\t"))
		return err
	case csvOutputFormat:
		if !rw.wroteHeader {
			header := make([]string, n)
			for i := range header {
				header[i] = stmt.ColumnName(i)
			}
			if err := rw.csv.Write(header); err != nil {
				return err
			}
			rw.wroteHeader = true
		}
		row := make([]string, n)
		for i := range row {
			row[i] = stmt.ColumnText(i)
		}
		return rw.csv.Write(row)
	case jsonOutputFormat:
		if err := rw.json.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i := range n {
			if err := rw.json.WriteToken(jsontext.String(stmt.ColumnName(i))); err != nil {
				return err
			}
			if err := rw.json.WriteToken(columnToken(stmt, i)); err != nil {
				return err
			}
		}
		return rw.json.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("unhandled format %v", rw.format)
	}
}

func columnToken(stmt *sqlite.Stmt, i int) jsontext.Token {
	switch stmt.ColumnType(i) {
	case sqlite.TypeNull:
		return jsontext.Null
	case sqlite.TypeInteger:
		return jsontext.Int(stmt.ColumnInt64(i))
	case sqlite.TypeFloat:
		return jsontext.Float(stmt.ColumnFloat(i))
	default:
		return jsontext.String(stmt.ColumnText(i))
	}
}

func (rw *rowWriter) flush() error {
	if rw.csv != nil {
		rw.csv.Flush()
		return rw.csv.Error()
	}
	return nil
}

func newShellCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:           "shell",
		Short:         "SQLite shell with the datefield functions",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Hidden:        true,
	}
	dbPath := c.Flags().String("db", "", "`path` to database (default in-memory)")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context(), g, *dbPath)
	}
	return c
}

func runShell(ctx context.Context, g *globalConfig, dbPath string) error {
	db, err := g.openDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer closeConn(ctx, db)

	shell.Run(db)
	return nil
}
