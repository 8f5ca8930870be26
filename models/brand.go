package models

// Brands lists every brand the shop stocks. The catalog form offers
// exactly this set; the browse filter matches against it case-insensitively.
var Brands = []string{
	"Hotwheels",
	"MiniGT",
	"POPRACE",
	"INNO64",
	"BBURAGO",
	"MAISTO",
	"MAJORETTE",
	"TOMICA",
	"GREENLIGHT",
	"AUTOWORLD",
	"JOHNNYIGHTNING",
	"MATCHBOX",
	"SPECIALS",
}
