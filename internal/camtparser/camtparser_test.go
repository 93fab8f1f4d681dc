package camtparser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <Stmt>
      <Id>STMT-2023-01</Id>
      <Acct>
        <Id>
          <IBAN>CH9300762011623852957</IBAN>
        </Id>
      </Acct>
      <Ntry>
        <Amt Ccy="CHF">1250.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2023-01-02</Dt></BookgDt>
        <ValDt><Dt>2023-01-03</Dt></ValDt>
        <AddtlNtryInf>Salary January</AddtlNtryInf>
      </Ntry>
      <Ntry>
        <Amt Ccy="CHF">4.50</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2023-01-04</Dt></BookgDt>
        <NtryDtls>
          <TxDtls>
            <RmtInf><Ustrd>Coffee Shop</Ustrd></RmtInf>
          </TxDtls>
        </NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="EUR">10</Amt>
        <RvslInd>true</RvslInd>
        <ValDt><DtTm>2023-01-05T08:30:00</DtTm></ValDt>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader("  \n" + sampleStatement))
	require.NoError(t, err)
	assert.Contains(t, doc.Raw, "STMT-2023-01")
}

func TestParse_RejectsNonXML(t *testing.T) {
	for _, input := range []string{"", "   ", "hello <Document/>", ":20:REF"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, parsererror.ErrInvalidFormat))

			var invalid *parsererror.InvalidFormatError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "camt053", invalid.ExpectedFormat)
		})
	}
}

func TestToTransactions_Placeholder(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)

	txs := ToTransactions(doc)
	require.Len(t, txs, 1)
	assert.Equal(t, models.CAMTPlaceholderReference, txs[0].Reference)
	assert.Equal(t, models.CAMTPlaceholderAccount, txs[0].Account)
	assert.Equal(t, models.CAMTPlaceholderDescription, txs[0].Description)
	assert.True(t, txs[0].Amount.IsZero())
	assert.Equal(t, models.UnknownCurrency, txs[0].Currency)
	assert.Equal(t, models.EpochDate, txs[0].ValueDate)

	// Content does not matter
	assert.Len(t, ToTransactions(&Document{Raw: "<x/>"}), 1)
}

func TestExtractEntries(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)

	txs, err := ExtractEntries(doc)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	for _, tx := range txs {
		assert.Equal(t, "STMT-2023-01", tx.Reference)
		assert.Equal(t, "CH9300762011623852957", tx.Account)
	}

	assert.True(t, decimal.RequireFromString("1250").Equal(txs[0].Amount))
	assert.Equal(t, "CHF", txs[0].Currency)
	assert.Equal(t, "2023-01-03", txs[0].ValueDate)
	assert.Equal(t, "Salary January", txs[0].Description)

	assert.True(t, decimal.RequireFromString("-4.5").Equal(txs[1].Amount))
	assert.Equal(t, "2023-01-04", txs[1].ValueDate, "booking date is the fallback")
	assert.Equal(t, "Coffee Shop", txs[1].Description)

	assert.True(t, decimal.RequireFromString("-10").Equal(txs[2].Amount), "reversal without indicator is a debit")
	assert.Equal(t, "EUR", txs[2].Currency)
	assert.Equal(t, "2023-01-05", txs[2].ValueDate)
	assert.Equal(t, "", txs[2].Description)
}

func TestExtractEntries_Errors(t *testing.T) {
	_, err := ExtractEntries(&Document{Raw: "<Document><BkToCstmrStmt>"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrInvalidFormat))

	_, err = ExtractEntries(&Document{Raw: `<Document><BkToCstmrStmt><Stmt><Ntry><Amt Ccy="EUR">abc</Amt></Ntry></Stmt></BkToCstmrStmt></Document>`})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrInvalidFormat))

	_, err = ExtractEntries(nil)
	assert.Error(t, err)
}

func TestExtractEntries_NoStatements(t *testing.T) {
	txs, err := ExtractEntries(&Document{Raw: "<Document/>"})
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestWrite_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<Document xmlns="`+Namespace+`"/>`)
	assert.NotContains(t, out, "Stmt")
}

func TestWrite_Entries(t *testing.T) {
	credit := models.NewTransaction()
	credit.Reference = "STMT1"
	credit.Account = "ACC1"
	credit.Amount = decimal.RequireFromString("999.99")
	credit.Currency = "EUR"
	credit.ValueDate = "2023-01-05"
	credit.Description = "Salary"

	debit := models.NewTransaction()
	debit.Reference = "OTHER"
	debit.Account = "OTHER"
	debit.Amount = decimal.RequireFromString("-100.5")
	debit.Currency = "EUR"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []models.Transaction{credit, debit}))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "<Stmt>"))
	assert.Equal(t, 2, strings.Count(out, "<Ntry>"))
	assert.Contains(t, out, "<Id>STMT1</Id>")
	assert.NotContains(t, out, "OTHER", "statement header comes from the first transaction")
	assert.Contains(t, out, `<Amt Ccy="EUR">999.99</Amt>`)
	assert.Contains(t, out, `<Amt Ccy="EUR">100.50</Amt>`)
	assert.Contains(t, out, "<RvslInd>false</RvslInd>")
	assert.Contains(t, out, "<RvslInd>true</RvslInd>")
	assert.Contains(t, out, "<CdtDbtInd>DBIT</CdtDbtInd>")
	assert.Contains(t, out, "<AddtlNtryInf>Salary</AddtlNtryInf>")
}

func TestWrite_EscapesText(t *testing.T) {
	tx := models.NewTransaction()
	tx.Reference = "R&D"
	tx.Account = "ACC<1>"
	tx.Description = "Fish & Chips <lunch>"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []models.Transaction{tx}))
	out := buf.String()

	assert.Contains(t, out, "R&amp;D")
	assert.Contains(t, out, "ACC&lt;1&gt;")
	assert.Contains(t, out, "Fish &amp; Chips &lt;lunch&gt;")
	assert.NotContains(t, out, "<lunch>")
}

func TestWrite_ExtractRoundTrip(t *testing.T) {
	tx := models.NewTransaction()
	tx.Reference = "STMT1"
	tx.Account = "CH9300762011623852957"
	tx.Amount = decimal.RequireFromString("-42.10")
	tx.Currency = "CHF"
	tx.ValueDate = "2023-06-30"
	tx.Description = "Fish & Chips"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []models.Transaction{tx}))

	doc, err := Parse(&buf)
	require.NoError(t, err)
	txs, err := ExtractEntries(doc)
	require.NoError(t, err)

	require.Len(t, txs, 1)
	assert.Equal(t, tx.Reference, txs[0].Reference)
	assert.Equal(t, tx.Account, txs[0].Account)
	assert.True(t, tx.Amount.Equal(txs[0].Amount))
	assert.Equal(t, tx.Currency, txs[0].Currency)
	assert.Equal(t, tx.ValueDate, txs[0].ValueDate)
	assert.Equal(t, tx.Description, txs[0].Description)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_SinkFailure(t *testing.T) {
	err := Write(failingWriter{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrIO))
}
