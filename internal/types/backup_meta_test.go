package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBackupMetaKeepsTableNameContract(t *testing.T) {
	meta := BackupMeta{Table: "_overall", TotalRows: 42}

	if got := meta.TableName(); got != "backup_meta" {
		t.Fatalf("TableName() = %q, want %q", got, "backup_meta")
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"table_name":"_overall"`) {
		t.Fatalf("payload %s missing table_name key", payload)
	}
}
