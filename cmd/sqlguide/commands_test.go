package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"

	"github.com/isaac-evs/sqlguide"
)

func testContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	// Config path that does not exist, so defaults apply
	return &Context{
		Config: filepath.Join(t.TempDir(), "sqlguide.yaml"),
		Out:    &buf,
	}, &buf
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sqlguide.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestShowCmd(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &ShowCmd{Name: "INNER JOIN"}
	assert.NoError(t, cmd.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, "INNER JOIN")
	assert.Contains(t, out, "(Join Types)")
	assert.Contains(t, out, "matching values in both tables")
}

func TestShowCmdFoldsCase(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &ShowCmd{Name: "inner join"}
	assert.NoError(t, cmd.Run(ctx))
	assert.Contains(t, buf.String(), "INNER JOIN")
}

func TestShowCmdNotFoundIsNotAnError(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Quiet = true

	cmd := &ShowCmd{Name: "MERGE"}
	assert.NoError(t, cmd.Run(ctx))
	assert.Equal(t, "", buf.String())
}

func TestListCmd(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &ListCmd{}
	assert.NoError(t, cmd.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "Division")
	// Document order: basic clauses before relational algebra
	assert.True(t, strings.Index(out, "SELECT") < strings.Index(out, "Division"))
}

func TestListCmdCategory(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &ListCmd{Category: "Join Types"}
	assert.NoError(t, cmd.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, "CROSS JOIN")
	assert.NotContains(t, out, "PRIMARY KEY")
}

func TestListCmdUnknownCategory(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Quiet = true

	cmd := &ListCmd{Category: "Window Functions"}
	assert.NoError(t, cmd.Run(ctx))
	assert.Equal(t, "", buf.String())
}

func TestCategoriesCmd(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &CategoriesCmd{}
	assert.NoError(t, cmd.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, "Join Types (6)")
	assert.Contains(t, out, "Constraints (6)")
}

func TestSearchCmd(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &SearchCmd{Pattern: "cartesian"}
	assert.NoError(t, cmd.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, "CROSS JOIN")
	assert.Contains(t, out, "Cartesian Product")
}

func TestSearchCmdLimit(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Format = "json"

	// Anchored so only entries named "... JOIN" match, not every entry
	// whose description mentions joins
	cmd := &SearchCmd{Pattern: "JOIN$", Limit: 2}
	assert.NoError(t, cmd.Run(ctx))

	var matches []sqlguide.Entry

	assert.NoError(t, json.Unmarshal(buf.Bytes(), &matches))
	assert.Equal(t, 2, len(matches))
	assert.Equal(t, "INNER JOIN", matches[0].Name)
	assert.Equal(t, "LEFT JOIN", matches[1].Name)
}

func TestSearchCmdDocumentOrder(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Format = "json"

	// An unanchored pattern also hits descriptions, so earlier entries that
	// merely mention joins come back before the join entries themselves.
	cmd := &SearchCmd{Pattern: "JOIN", Limit: -1}
	assert.NoError(t, cmd.Run(ctx))

	var matches []sqlguide.Entry

	assert.NoError(t, json.Unmarshal(buf.Bytes(), &matches))
	assert.True(t, len(matches) > 2)
	assert.Equal(t, "FROM", matches[0].Name)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.Name)
	}

	assert.Contains(t, strings.Join(names, ","), "INNER JOIN")
}

func TestSearchCmdLimitOverridesConfig(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Config = writeTestConfig(t, "search:\n  limit: 2\n")
	ctx.Format = "json"

	// Flag left unset: the configured limit applies
	cmd := &SearchCmd{Pattern: "JOIN$", Limit: -1}
	assert.NoError(t, cmd.Run(ctx))

	var matches []sqlguide.Entry

	assert.NoError(t, json.Unmarshal(buf.Bytes(), &matches))
	assert.Equal(t, 2, len(matches))

	// An explicit 0 turns the configured limit back off
	buf.Reset()

	cmd = &SearchCmd{Pattern: "JOIN$", Limit: 0}
	assert.NoError(t, cmd.Run(ctx))

	matches = nil
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &matches))
	assert.True(t, len(matches) > 2)
}

func TestSearchCmdInvalidPattern(t *testing.T) {
	ctx, _ := testContext(t)

	cmd := &SearchCmd{Pattern: "(unclosed"}
	assert.Error(t, cmd.Run(ctx))
}

func TestShowCmdSourceFile(t *testing.T) {
	ctx, buf := testContext(t)

	content := `# Tiny Guide

## Basic

### SELECT

Retrieves rows from the tiny guide.

` + "```sql" + `
SELECT 1;
` + "```" + `
`

	path := filepath.Join(t.TempDir(), "tiny.md")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ctx.Source = path

	cmd := &ShowCmd{Name: "SELECT"}
	assert.NoError(t, cmd.Run(ctx))
	assert.Contains(t, buf.String(), "tiny guide")
}

func TestShowCmdBadSourceFails(t *testing.T) {
	ctx, _ := testContext(t)
	ctx.Source = filepath.Join(t.TempDir(), "missing.md")

	cmd := &ShowCmd{Name: "SELECT"}
	assert.Error(t, cmd.Run(ctx))
}

func TestValidateCmd(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Verbose = true

	content := `# Guide

## Basic

### SELECT

Retrieves rows.

` + "```sql" + `
SELECT 1;
` + "```" + `
`

	path := filepath.Join(t.TempDir(), "guide.md")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := &ValidateCmd{Source: path}
	assert.NoError(t, cmd.Run(ctx))
	assert.Contains(t, buf.String(), "OK")
	assert.Contains(t, buf.String(), "1 entries in 1 categories")
}

func TestValidateCmdHonorsColorNever(t *testing.T) {
	ctx, buf := testContext(t)
	ctx.Config = writeTestConfig(t, "color: never\n")

	prev := color.NoColor
	color.NoColor = false

	t.Cleanup(func() { color.NoColor = prev })

	cmd := &ValidateCmd{}
	assert.NoError(t, cmd.Run(ctx))
	assert.True(t, color.NoColor)
	assert.Contains(t, buf.String(), "OK: built-in guide")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestValidateCmdDuplicateFails(t *testing.T) {
	ctx, _ := testContext(t)

	content := `# Guide

## Basic

### SELECT

Retrieves rows.

` + "```sql" + `
SELECT 1;
` + "```" + `

### SELECT

Duplicate.

` + "```sql" + `
SELECT 2;
` + "```" + `
`

	path := filepath.Join(t.TempDir(), "guide.md")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := &ValidateCmd{Source: path}
	assert.Error(t, cmd.Run(ctx))
}

func TestNewFormatterResolution(t *testing.T) {
	ctx, _ := testContext(t)

	_, config, err := loadCatalog(ctx)
	assert.NoError(t, err)

	// Config default
	formatter, err := newFormatter(ctx, config)
	assert.NoError(t, err)
	assert.Equal(t, "text", string(formatter.Format))

	// Flag wins over config
	ctx.Format = "table"
	formatter, err = newFormatter(ctx, config)
	assert.NoError(t, err)
	assert.Equal(t, "table", string(formatter.Format))

	// Unknown format is rejected
	ctx.Format = "html"
	_, err = newFormatter(ctx, config)
	assert.Error(t, err)
}
