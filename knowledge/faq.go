package knowledge

// FAQ is one question/answer pair from the general finance corpus.
type FAQ struct {
	Question string
	Answer   string
}

// faqCorpus is the fixed FAQ set. Order matters: retrieval breaks
// score ties by first occurrence.
var faqCorpus = []FAQ{
	{"what is a mutual fund", "A mutual fund is a pooled investment vehicle that collects money from many investors to invest in a diversified portfolio of securities like stocks, bonds, and other assets. It's managed by professional fund managers."},
	{"what are mutual funds", "Mutual funds are pooled investment vehicles that collect money from many investors to invest in securities. They offer diversification, professional management, and liquidity."},
	{"mutual fund", "A mutual fund pools money from multiple investors to invest in a diversified portfolio of securities. Professional fund managers make investment decisions on behalf of investors."},
	{"what is sip", "SIP (Systematic Investment Plan) is a method of investing in mutual funds where you invest a fixed amount regularly, typically monthly. It helps with rupee cost averaging and disciplined investing."},
	{"what is nav", "NAV (Net Asset Value) is the per-share value of a mutual fund, calculated by dividing the total value of all assets minus liabilities by the number of outstanding shares."},
	{"what is expense ratio", "Expense ratio is the annual fee charged by mutual funds, expressed as a percentage of your investment. It covers fund management and operational costs."},
	{"how to invest in mutual funds", "You can invest in mutual funds through SIP (regular investments) or lump sum. Choose funds based on your risk tolerance, investment horizon, and financial goals."},
	{"types of mutual funds", "Main types include equity funds (stocks), debt funds (bonds), balanced/hybrid funds (mix), index funds (track market indices), and money market funds (short-term securities)."},
	{"mutual fund vs stocks", "Mutual funds offer instant diversification and professional management but charge fees. Stocks give you direct ownership and control but require more research and carry higher risk."},
	{"benefits of mutual funds", "Key benefits include professional management, diversification, liquidity, affordability (small minimum investments), and various investment options to match different risk profiles."},
}
