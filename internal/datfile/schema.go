package datfile

type Kind int

const (
	String Kind = iota
	Date   // normalized to MM/DD/YYYY on load
	CIF    // zero-filled to 10 digits
	Loan   // zero-filled to 15 digits
)

type Column struct {
	Name string
	Kind Kind
}

// TblColumns: 1099MTbl.dat layout.
var TblColumns = []Column{
	{Name: "ACID", Kind: String},
	{Name: "1099_Type", Kind: String},
	{Name: "1099_Amt", Kind: String},
	{Name: "1099_Source", Kind: String},
	{Name: "Date_of_Transaction", Kind: Date},
	{Name: "Borrower_CIF", Kind: CIF},
	{Name: "Cosigner_CIF", Kind: CIF},
}

// TranColumns: 1099MTran.dat layout.
var TranColumns = []Column{
	{Name: "ACID", Kind: String},
	{Name: "Loan_Number", Kind: Loan},
	{Name: "Borrower_CIF", Kind: CIF},
	{Name: "Value_Date", Kind: Date},
	{Name: "UTC", Kind: String},
	{Name: "Tran_Date", Kind: Date},
	{Name: "Tran_ID", Kind: String},
	{Name: "Tran_Total", Kind: String},
	{Name: "Tran_Prin", Kind: String},
	{Name: "Tran_INT", Kind: String},
	{Name: "Tran_Fee", Kind: String},
	{Name: "Agent_ID_System_Processes_ID", Kind: String},
	{Name: "Tran_Description", Kind: String},
	{Name: "Tran_Remarks", Kind: String},
	{Name: "Cosigner_CIF", Kind: CIF},
}

func Header(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}
