package xmlutils

import "gopkg.in/xmlpath.v2"

// CAMT.053 paths. Statement paths are absolute; entry paths are relative to
// an Stmt or Ntry node. xmlpath matches local names, so the camt namespace
// does not need to be spelled out.
var (
	PathStatement = xmlpath.MustCompile("//BkToCstmrStmt/Stmt")

	PathStatementID      = xmlpath.MustCompile("Id")
	PathStatementAccount = xmlpath.MustCompile("Acct/Id")
	PathEntry            = xmlpath.MustCompile("Ntry")

	PathAmount         = xmlpath.MustCompile("Amt")
	PathCurrency       = xmlpath.MustCompile("Amt/@Ccy")
	PathCreditDebitInd = xmlpath.MustCompile("CdtDbtInd")
	PathReversalInd    = xmlpath.MustCompile("RvslInd")
	PathValueDate      = xmlpath.MustCompile("ValDt/Dt")
	PathValueDateTime  = xmlpath.MustCompile("ValDt/DtTm")
	PathBookingDate    = xmlpath.MustCompile("BookgDt/Dt")
	PathAddEntryInfo   = xmlpath.MustCompile("AddtlNtryInf")
	PathRemittanceInfo = xmlpath.MustCompile("NtryDtls/TxDtls/RmtInf/Ustrd")
	PathAddTxInfo      = xmlpath.MustCompile("NtryDtls/TxDtls/AddtlTxInf")
)
