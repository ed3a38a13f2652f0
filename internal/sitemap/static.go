package sitemap

// StaticPage is a hand-curated entry; Path is appended to the base URL as-is.
type StaticPage struct {
	Path       string
	Priority   float64
	ChangeFreq string
}

var homePage = StaticPage{Path: "/", Priority: 1.0, ChangeFreq: "daily"}

// Ordem fixa: páginas informativas, agendamento/pro, autenticação, categorias.
var staticPages = []StaticPage{
	{Path: "/apnee-du-sommeil", Priority: 0.9},
	{Path: "/a-propos", Priority: 0.8},
	{Path: "/contact", Priority: 0.8},

	{Path: "/appointment", Priority: 0.7},
	{Path: "/space-pro", Priority: 0.7},

	{Path: "/login", Priority: 0.3},
	{Path: "/signup", Priority: 0.3},

	{Path: "/products?category=APPAREILS+CPAP%2FPPC", Priority: 0.9},
	{Path: "/products?category=ACCESSOIRES+CPAP%2FPPC", Priority: 0.8},
	{Path: "/products?category=CONCENTRATEURS+D%27OXYGENE", Priority: 0.9},
	{Path: "/products?category=MASQUES", Priority: 0.8},
	{Path: "/products?category=APPAREILS+NEBULISEUR", Priority: 0.7},
	{Path: "/products?category=APPAREILS+ASPIRATEUR", Priority: 0.7},
	{Path: "/products?category=ACCESSOIRES+AEROSOL", Priority: 0.6},
	{Path: "/products?category=ACCESSOIRE+ASPIRATEUR", Priority: 0.6},
	{Path: "/products?category=LIT+MEDICALISE", Priority: 0.7},
}

var searchPage = StaticPage{Path: "/search?q=cpap", Priority: 0.2}

// StaticPages returns the pages emitted before the products, homepage first.
func StaticPages() []StaticPage {
	pages := make([]StaticPage, 0, len(staticPages)+1)
	pages = append(pages, homePage)
	return append(pages, staticPages...)
}

// TrailingPages returns the pages emitted after the products.
func TrailingPages() []StaticPage {
	return []StaticPage{searchPage}
}
