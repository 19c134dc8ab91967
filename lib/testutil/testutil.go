package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	configlibsql "modchem-backend/lib/configutil/libsql"
	"modchem-backend/lib/telemetry"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
}

type ServiceResult struct {
	// DB is a sqlite file under the test's temp dir, nil without a schema.
	DB *sql.DB
}

// SetupService wires telemetry for the test and opens a scratch database
// with the given schema applied. The returned func undoes both.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))
	if params.DbSchema == "" {
		return ServiceResult{}, cleanup
	}

	conn, err := configlibsql.Struct{
		File: filepath.Join(t.TempDir(), "service.db"),
	}.OpenDB(params.DbSchema)
	if err != nil {
		cleanup()
		t.Fatal(err)
	}
	return ServiceResult{DB: conn}, func() {
		conn.Close()
		cleanup()
	}
}
