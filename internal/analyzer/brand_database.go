package analyzer

// Brand is one protected entry in the impersonation database
type Brand struct {
	Name     string   // Canonical brand token, lowercase
	Domains  []string // Official registrable domains
	Category BrandCategory
	Variants []string // Regional or alternate spellings, lowercase
}

// DefaultBrandDatabase returns the compiled-in protected-brand table.
// The returned slice is shared read-only; callers must not mutate it.
func DefaultBrandDatabase() []Brand {
	return defaultBrands
}

var defaultBrands = []Brand{
	// Financial
	{Name: "paypal", Domains: []string{"paypal.com", "paypal.me"}, Category: CategoryFinancial},
	{Name: "visa", Domains: []string{"visa.com"}, Category: CategoryFinancial},
	{Name: "mastercard", Domains: []string{"mastercard.com"}, Category: CategoryFinancial},
	{Name: "chase", Domains: []string{"chase.com"}, Category: CategoryFinancial},
	{Name: "wellsfargo", Domains: []string{"wellsfargo.com"}, Category: CategoryFinancial, Variants: []string{"wells-fargo"}},
	{Name: "bankofamerica", Domains: []string{"bankofamerica.com"}, Category: CategoryFinancial, Variants: []string{"bofa"}},
	{Name: "citibank", Domains: []string{"citi.com", "citibank.com"}, Category: CategoryFinancial, Variants: []string{"citi"}},
	{Name: "hsbc", Domains: []string{"hsbc.com"}, Category: CategoryFinancial},
	{Name: "revolut", Domains: []string{"revolut.com"}, Category: CategoryFinancial},
	{Name: "westernunion", Domains: []string{"westernunion.com"}, Category: CategoryFinancial},

	// Government
	{Name: "irs", Domains: []string{"irs.gov"}, Category: CategoryGovernment},
	{Name: "gov", Domains: []string{"usa.gov"}, Category: CategoryGovernment},
	{Name: "hmrc", Domains: []string{"hmrc.gov.uk"}, Category: CategoryGovernment},

	// Logistics
	{Name: "dhl", Domains: []string{"dhl.com", "dhl.de"}, Category: CategoryLogistics},
	{Name: "fedex", Domains: []string{"fedex.com"}, Category: CategoryLogistics},
	{Name: "ups", Domains: []string{"ups.com"}, Category: CategoryLogistics},
	{Name: "usps", Domains: []string{"usps.com"}, Category: CategoryLogistics},
	{Name: "royalmail", Domains: []string{"royalmail.com"}, Category: CategoryLogistics, Variants: []string{"royal-mail"}},

	// Tech
	{Name: "google", Domains: []string{"google.com", "gmail.com", "youtube.com"}, Category: CategoryTech},
	{Name: "microsoft", Domains: []string{"microsoft.com", "live.com", "outlook.com", "office.com"}, Category: CategoryTech},
	{Name: "apple", Domains: []string{"apple.com", "icloud.com"}, Category: CategoryTech},
	{Name: "netflix", Domains: []string{"netflix.com"}, Category: CategoryTech},
	{Name: "adobe", Domains: []string{"adobe.com"}, Category: CategoryTech},
	{Name: "dropbox", Domains: []string{"dropbox.com"}, Category: CategoryTech},
	{Name: "steam", Domains: []string{"steampowered.com", "steamcommunity.com"}, Category: CategoryTech},

	// Retail
	{Name: "amazon", Domains: []string{"amazon.com", "amazon.de", "amazon.co.uk"}, Category: CategoryRetail},
	{Name: "ebay", Domains: []string{"ebay.com", "ebay.de", "ebay.co.uk"}, Category: CategoryRetail},
	{Name: "walmart", Domains: []string{"walmart.com"}, Category: CategoryRetail},
	{Name: "alibaba", Domains: []string{"alibaba.com", "aliexpress.com"}, Category: CategoryRetail},

	// Social
	{Name: "facebook", Domains: []string{"facebook.com", "fb.com"}, Category: CategorySocial},
	{Name: "instagram", Domains: []string{"instagram.com"}, Category: CategorySocial},
	{Name: "whatsapp", Domains: []string{"whatsapp.com"}, Category: CategorySocial},
	{Name: "telegram", Domains: []string{"telegram.org"}, Category: CategorySocial},
	{Name: "linkedin", Domains: []string{"linkedin.com"}, Category: CategorySocial},
	{Name: "twitter", Domains: []string{"twitter.com", "x.com"}, Category: CategorySocial},

	// Crypto
	{Name: "binance", Domains: []string{"binance.com"}, Category: CategoryCrypto},
	{Name: "coinbase", Domains: []string{"coinbase.com"}, Category: CategoryCrypto},
	{Name: "metamask", Domains: []string{"metamask.io"}, Category: CategoryCrypto},
	{Name: "kraken", Domains: []string{"kraken.com"}, Category: CategoryCrypto},
}

// comboTokens are suspicious additions that turn a brand name into a
// combosquat domain ("paypal-secure", "verify-amazon")
var comboTokens = []string{
	"secure", "login", "signin", "verify", "verification", "billing",
	"support", "update", "account", "confirm", "wallet", "service",
	"help", "auth", "alert", "recover", "unlock",
}
