package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractedStatement = `{
  "merchantStatementUploadId": "upload-cli-1",
  "businessName": "Corner Cafe Ltd",
  "statementDate": "2024-03-31",
  "paymentProvider": "Paymentsense",
  "totalValue": "£1,000.00",
  "totalCharges": "£15.00",
  "transactionCharges": [
    {
      "chargeType": {"scheme": "visa", "presence": "inPerson", "region": "uk", "realm": "consumer", "cardType": "debit"},
      "chargeRate": "1.5%",
      "numberOfTransactions": 10,
      "chargeTotal": "£15.00",
      "transactionsValue": "£1,000.00"
    },
    {
      "chargeType": {"scheme": "mastercard", "presence": "online", "region": "eea", "realm": "commercial", "cardType": "credit"},
      "chargeRate": "1.9%",
      "numberOfTransactions": 1,
      "chargeTotal": "n/a",
      "transactionsValue": "£0.00"
    }
  ]
}`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_TransformsInputFile(t *testing.T) {
	input := writeInput(t, extractedStatement)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-input", input}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &view))

	assert.Equal(t, "upload-cli-1", view["merchantStatementUploadId"])
	breakdown, ok := view["breakdown"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, breakdown, "visaInPersonUkConsumerDebit")
	assert.Contains(t, breakdown, "mastercardOnlineEeaCommercialCredit")

	assert.Contains(t, stderr.String(), "2 row(s) into 2 bucket(s)")
	assert.Contains(t, stderr.String(), "MONEY_PARSE")
}

func TestRun_ReadsStdinAndOverridesUploadID(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-upload-id", "override-7"}, strings.NewReader(extractedStatement), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"merchantStatementUploadId": "override-7"`)
}

func TestRun_WritesOutputFile(t *testing.T) {
	input := writeInput(t, extractedStatement)
	output := filepath.Join(t.TempDir(), "out.json")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-input", input, "-output", output}, nil, &stdout, &stderr))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monthlyRevenue": 1000.00`)
}

func TestRun_OutputPathIsDirectory(t *testing.T) {
	input := writeInput(t, extractedStatement)
	var stdout, stderr bytes.Buffer

	err := run([]string{"-input", input, "-output", t.TempDir()}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output")
}

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseOutput(t *testing.T) {
	diskFull := errors.New("no space left on device")

	c := &closer{}
	assert.NoError(t, closeOutput(c, "out.json", nil))
	assert.True(t, c.closed)

	c = &closer{err: diskFull}
	err := closeOutput(c, "out.json", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), `failed to close output "out.json"`)

	writeErr := errors.New("failed to write statement")
	c = &closer{err: diskFull}
	assert.Equal(t, writeErr, closeOutput(c, "out.json", writeErr))
	assert.True(t, c.closed)
}

func TestRun_Sample(t *testing.T) {
	var first, second, stderr bytes.Buffer

	require.NoError(t, run([]string{"-sample", "8", "-seed", "11"}, nil, &first, &stderr))
	require.NoError(t, run([]string{"-sample", "8", "-seed", "11"}, nil, &second, &stderr))

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, stderr.String(), "8 row(s)")
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, strings.NewReader(`{"businessName": "No Upload"}`), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid extracted statement")

	err = run(nil, strings.NewReader(`{`), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")

	err = run([]string{"-sample", "-3"}, nil, &stdout, &stderr)
	assert.Error(t, err)

	err = run([]string{"-input", filepath.Join(t.TempDir(), "missing.json")}, nil, &stdout, &stderr)
	assert.Error(t, err)
}
