package statement

import (
	"bytes"
	"testing"

	"github.com/amirasaad/onlinebanking/pkg/money"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPDFEncodesNonASCIIHolder(t *testing.T) {
	t.Parallel()
	details := accountsvc.Details{Holder: "Zoë", Number: 100001, Phone: "0977", Balance: money.Must("10")}

	doc := buildPDF(details, nil)
	doc.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	out := buf.Bytes()
	assert.True(t, bytes.Contains(out, []byte("Holder: Zo\xeb")), "holder should be written as cp1252")
	assert.False(t, bytes.Contains(out, []byte("Holder: Zo\xc3\xab")), "raw UTF-8 bytes must not reach the page")
}
