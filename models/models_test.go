package models

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordKind(t *testing.T) {
	tests := []struct {
		in      string
		want    RecordKind
		wantErr bool
	}{
		{in: "Credential", want: Credential},
		{in: "secret", want: Secret},
		{in: " BENEFICIARY ", want: Beneficiary},
		{in: "notification", want: Notification},
		{in: "diary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRecordKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordKind_JSON(t *testing.T) {
	data, err := json.Marshal(VaultRecord{RecordID: "a", Kind: Secret})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"Secret"`)

	_, err = json.Marshal(VaultRecord{Kind: RecordKind(42)})
	assert.Error(t, err)
}

func TestBatchResult_Failures(t *testing.T) {
	result := BatchResult{
		Status: StatusAccepted,
		Items: []TransferOutcome{
			{RecordID: "a", Status: StatusAccepted},
			{RecordID: "b", Error: "unreachable"},
			{RecordID: "c", Status: http.StatusBadGateway},
		},
	}

	failed := result.Failures()
	require.Len(t, failed, 2)
	assert.Equal(t, "b", failed[0].RecordID)
	assert.Equal(t, "c", failed[1].RecordID)
}

func TestGroupedAssets_Find(t *testing.T) {
	assets := GroupedAssets{{Group: "Will"}, {Group: "Secret"}}

	got, ok := assets.Find("Secret")
	assert.True(t, ok)
	assert.Equal(t, "Secret", got.Group)

	_, ok = assets.Find("Deed")
	assert.False(t, ok)
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
