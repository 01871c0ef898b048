package models

// PaymentMethodKind discriminates the payment method descriptor
type PaymentMethodKind string

const (
	PaymentMethodCard  PaymentMethodKind = "card"
	PaymentMethodACH   PaymentMethodKind = "ach"
	PaymentMethodToken PaymentMethodKind = "token"
)

// AccountType is the bank account type for ACH payments
type AccountType string

const (
	AccountTypeChecking AccountType = "Checking"
	AccountTypeSavings  AccountType = "Savings"
)

// CheckType distinguishes personal and business checks
type CheckType string

const (
	CheckTypePersonal CheckType = "Personal"
	CheckTypeBusiness CheckType = "Business"
)

// SECCode is the NACHA standard entry class for an ACH debit
type SECCode string

const (
	SECCodeWEB SECCode = "WEB"
	SECCodePPD SECCode = "PPD"
	SECCodeCCD SECCode = "CCD"
	SECCodeTEL SECCode = "TEL"
)

// CreditCard holds clear-text card data
type CreditCard struct {
	Number         string
	ExpMonth       int
	ExpYear        int
	CVV            string
	CardHolderName string
}

// ACHAccount holds bank account data for an ACH payment
type ACHAccount struct {
	AccountNumber   string
	RoutingNumber   string
	AccountType     AccountType
	CheckType       CheckType
	SECCode         SECCode
	CheckHolderName string
	BankName        string
}

// TokenKind records what payment instrument a multi-use token stands for
type TokenKind string

const (
	TokenKindCard TokenKind = "card"
	TokenKindACH  TokenKind = "ach"
)

// PaymentMethod is the payment method descriptor carried on a request.
// Exactly one of Card, ACH, or Token is populated, matching Kind; the
// builder layer enforces this before the core sees the request.
type PaymentMethod struct {
	Kind  PaymentMethodKind
	Card  *CreditCard
	ACH   *ACHAccount
	Token string

	// TokenKind is set when Kind is PaymentMethodToken so encoders know
	// which field layout the token replaces.
	TokenKind TokenKind
}

// CardPaymentMethod wraps card data in a descriptor
func CardPaymentMethod(card *CreditCard) PaymentMethod {
	return PaymentMethod{Kind: PaymentMethodCard, Card: card}
}

// ACHPaymentMethod wraps bank account data in a descriptor
func ACHPaymentMethod(ach *ACHAccount) PaymentMethod {
	return PaymentMethod{Kind: PaymentMethodACH, ACH: ach}
}

// TokenPaymentMethod wraps a previously issued multi-use token
func TokenPaymentMethod(token string, kind TokenKind) PaymentMethod {
	return PaymentMethod{Kind: PaymentMethodToken, Token: token, TokenKind: kind}
}
