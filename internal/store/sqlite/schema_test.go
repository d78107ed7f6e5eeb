package sqlite

import (
	"errors"
	"testing"

	"github.com/ybabel/BeurerScaleManager/internal/store"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "users", want: `"users"`},
		{name: "reserved word", in: "Table", want: `"Table"`},
		{name: "embedded quote", in: `we"ird`, want: `"we""ird"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteIdentifier(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCreateTable(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		cols    []store.Column
		want    string
		wantErr error
	}{
		{
			name:  "single column",
			table: "TablesVersions",
			cols: []store.Column{
				{Name: "tableName", Type: "TEXT PRIMARY KEY"},
			},
			want: `CREATE TABLE "TablesVersions" ("tableName" TEXT PRIMARY KEY);`,
		},
		{
			name:  "column order preserved",
			table: "UserData",
			cols: []store.Column{
				{Name: "id", Type: "TEXT PRIMARY KEY"},
				{Name: "weight", Type: "REAL"},
			},
			want: `CREATE TABLE "UserData" ("id" TEXT PRIMARY KEY, "weight" REAL);`,
		},
		{
			name:  "typeless column",
			table: "t",
			cols: []store.Column{
				{Name: "blob"},
			},
			want: `CREATE TABLE "t" ("blob");`,
		},
		{
			name:    "empty column list",
			table:   "t",
			cols:    nil,
			wantErr: store.ErrNoColumns,
		},
		{
			name:  "duplicate column",
			table: "t",
			cols: []store.Column{
				{Name: "id", Type: "TEXT"},
				{Name: "id", Type: "INTEGER"},
			},
			wantErr: store.ErrDuplicateColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCreateTable(tt.table, tt.cols)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildCreateTable() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCreateTable_EmptyName(t *testing.T) {
	if _, err := BuildCreateTable("", []store.Column{{Name: "id", Type: "TEXT"}}); err == nil {
		t.Error("expected error for empty table name")
	}
	if _, err := BuildCreateTable("t", []store.Column{{Type: "TEXT"}}); err == nil {
		t.Error("expected error for empty column name")
	}
}
