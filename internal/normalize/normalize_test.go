package normalize

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "line comment removed up to newline",
			sql:  "SELECT a -- note\nFROM t",
			want: "SELECT a \nFROM t",
		},
		{
			name: "block comment becomes one space",
			sql:  "SELECT /* c */ a",
			want: "SELECT   a",
		},
		{
			name: "comment marker inside string kept",
			sql:  "'-- not a comment'",
			want: "'-- not a comment'",
		},
		{
			name: "comment marker inside bracket kept",
			sql:  "[--x] y",
			want: "[--x] y",
		},
		{
			name: "escaped quote does not end string",
			sql:  "'it''s -- fine'",
			want: "'it''s -- fine'",
		},
		{
			name: "line comment without newline removes rest",
			sql:  "-- only comment",
			want: "",
		},
		{
			name: "unterminated block comment removes rest",
			sql:  "a /* x",
			want: "a  ",
		},
		{
			name: "single dash kept",
			sql:  "a - b",
			want: "a - b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.sql); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.sql, got, tt.want)
			}
		})
	}
}

func TestStripUsePrologue(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "use with semicolon",
			sql:  "USE mydb;\nSELECT 1",
			want: "\nSELECT 1",
		},
		{
			name: "use with go separator",
			sql:  "USE [db]\nGO\nSELECT 1",
			want: "\nSELECT 1",
		},
		{
			name: "stacked prologues",
			sql:  "USE a;USE b;SELECT 1",
			want: "SELECT 1",
		},
		{
			name: "leading go alone",
			sql:  "GO\nSELECT 1",
			want: "\nSELECT 1",
		},
		{
			name: "no prologue unchanged",
			sql:  "SELECT 1",
			want: "SELECT 1",
		},
		{
			name: "word starting with go is not a separator",
			sql:  "GOTO label",
			want: "GOTO label",
		},
		{
			name: "use alone",
			sql:  "USE mydb",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripUsePrologue(tt.sql); got != tt.want {
				t.Errorf("StripUsePrologue(%q) = %q, want %q", tt.sql, got, tt.want)
			}
		})
	}
}

func TestStripCTEPrologue(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "single cte",
			sql:  "WITH x AS (SELECT 1) SELECT 2",
			want: "SELECT 2",
		},
		{
			name: "multiple ctes",
			sql:  "WITH a AS (SELECT 1), b AS (SELECT 2) SELECT 3",
			want: "SELECT 3",
		},
		{
			name: "cte with column list",
			sql:  "WITH x (a, b) AS (SELECT 1, 2) SELECT 3",
			want: "SELECT 3",
		},
		{
			name: "with not followed by cte shape unchanged",
			sql:  "WITH x (SELECT 1)",
			want: "WITH x (SELECT 1)",
		},
		{
			name: "unterminated body unchanged",
			sql:  "WITH x AS (SELECT 1",
			want: "WITH x AS (SELECT 1",
		},
		{
			name: "no with unchanged",
			sql:  "SELECT 1",
			want: "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCTEPrologue(tt.sql); got != tt.want {
				t.Errorf("StripCTEPrologue(%q) = %q, want %q", tt.sql, got, tt.want)
			}
		})
	}
}

func TestStatement(t *testing.T) {
	sql := "-- header\nUSE db;\nWITH c AS (SELECT 1) SELECT a FROM t"
	want := "SELECT a FROM t"
	if got := Statement(sql); got != want {
		t.Errorf("Statement(%q) = %q, want %q", sql, got, want)
	}
}

func TestStatementIdempotent(t *testing.T) {
	sql := "USE db; WITH c AS (SELECT 1) SELECT a FROM t -- x"
	once := Statement(sql)
	if twice := Statement(once); twice != once {
		t.Errorf("Statement(Statement()) = %q, want %q", twice, once)
	}
}
