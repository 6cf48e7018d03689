package entity

// entityTable maps a named character reference (without its leading '&') to
// the one or two Unicode scalars it expands to. It is a curated subset of
// the WHATWG named-entity table (the full table lists 2231 names): every
// legacy, semicolon-optional Latin-1 reference inherited from HTML4 (both
// with and without the trailing ';', since both are individually valid
// DAFSA entries) plus a representative spread of semicolon-required
// references spanning the mathematical, Greek-letter and typographic
// ranges, and a couple of genuinely multi-codepoint references so both the
// one- and two-scalar expansion paths are exercised.
var entityTable = map[string][2]rune{
	// Legacy semicolon-optional references (valid both with and without ';').
	"AElig": {0x00C6, 0}, "AElig;": {0x00C6, 0},
	"AMP": {0x0026, 0}, "AMP;": {0x0026, 0},
	"Aacute": {0x00C1, 0}, "Aacute;": {0x00C1, 0},
	"Acirc": {0x00C2, 0}, "Acirc;": {0x00C2, 0},
	"Agrave": {0x00C0, 0}, "Agrave;": {0x00C0, 0},
	"Aring": {0x00C5, 0}, "Aring;": {0x00C5, 0},
	"Atilde": {0x00C3, 0}, "Atilde;": {0x00C3, 0},
	"Auml": {0x00C4, 0}, "Auml;": {0x00C4, 0},
	"COPY": {0x00A9, 0}, "COPY;": {0x00A9, 0},
	"Ccedil": {0x00C7, 0}, "Ccedil;": {0x00C7, 0},
	"ETH": {0x00D0, 0}, "ETH;": {0x00D0, 0},
	"Eacute": {0x00C9, 0}, "Eacute;": {0x00C9, 0},
	"Ecirc": {0x00CA, 0}, "Ecirc;": {0x00CA, 0},
	"Egrave": {0x00C8, 0}, "Egrave;": {0x00C8, 0},
	"Euml": {0x00CB, 0}, "Euml;": {0x00CB, 0},
	"GT": {0x003E, 0}, "GT;": {0x003E, 0},
	"Iacute": {0x00CD, 0}, "Iacute;": {0x00CD, 0},
	"Icirc": {0x00CE, 0}, "Icirc;": {0x00CE, 0},
	"Igrave": {0x00CC, 0}, "Igrave;": {0x00CC, 0},
	"Iuml": {0x00CF, 0}, "Iuml;": {0x00CF, 0},
	"LT": {0x003C, 0}, "LT;": {0x003C, 0},
	"Ntilde": {0x00D1, 0}, "Ntilde;": {0x00D1, 0},
	"Oacute": {0x00D3, 0}, "Oacute;": {0x00D3, 0},
	"Ocirc": {0x00D4, 0}, "Ocirc;": {0x00D4, 0},
	"Ograve": {0x00D2, 0}, "Ograve;": {0x00D2, 0},
	"Oslash": {0x00D8, 0}, "Oslash;": {0x00D8, 0},
	"Otilde": {0x00D5, 0}, "Otilde;": {0x00D5, 0},
	"Ouml": {0x00D6, 0}, "Ouml;": {0x00D6, 0},
	"QUOT": {0x0022, 0}, "QUOT;": {0x0022, 0},
	"REG": {0x00AE, 0}, "REG;": {0x00AE, 0},
	"THORN": {0x00DE, 0}, "THORN;": {0x00DE, 0},
	"Uacute": {0x00DA, 0}, "Uacute;": {0x00DA, 0},
	"Ucirc": {0x00DB, 0}, "Ucirc;": {0x00DB, 0},
	"Ugrave": {0x00D9, 0}, "Ugrave;": {0x00D9, 0},
	"Uuml": {0x00DC, 0}, "Uuml;": {0x00DC, 0},
	"Yacute": {0x00DD, 0}, "Yacute;": {0x00DD, 0},
	"aacute": {0x00E1, 0}, "aacute;": {0x00E1, 0},
	"acirc": {0x00E2, 0}, "acirc;": {0x00E2, 0},
	"acute": {0x00B4, 0}, "acute;": {0x00B4, 0},
	"aelig": {0x00E6, 0}, "aelig;": {0x00E6, 0},
	"agrave": {0x00E0, 0}, "agrave;": {0x00E0, 0},
	"amp": {0x0026, 0}, "amp;": {0x0026, 0},
	"aring": {0x00E5, 0}, "aring;": {0x00E5, 0},
	"atilde": {0x00E3, 0}, "atilde;": {0x00E3, 0},
	"auml": {0x00E4, 0}, "auml;": {0x00E4, 0},
	"brvbar": {0x00A6, 0}, "brvbar;": {0x00A6, 0},
	"ccedil": {0x00E7, 0}, "ccedil;": {0x00E7, 0},
	"cedil": {0x00B8, 0}, "cedil;": {0x00B8, 0},
	"cent": {0x00A2, 0}, "cent;": {0x00A2, 0},
	"copy": {0x00A9, 0}, "copy;": {0x00A9, 0},
	"curren": {0x00A4, 0}, "curren;": {0x00A4, 0},
	"deg": {0x00B0, 0}, "deg;": {0x00B0, 0},
	"divide": {0x00F7, 0}, "divide;": {0x00F7, 0},
	"eacute": {0x00E9, 0}, "eacute;": {0x00E9, 0},
	"ecirc": {0x00EA, 0}, "ecirc;": {0x00EA, 0},
	"egrave": {0x00E8, 0}, "egrave;": {0x00E8, 0},
	"eth": {0x00F0, 0}, "eth;": {0x00F0, 0},
	"euml": {0x00EB, 0}, "euml;": {0x00EB, 0},
	"frac12": {0x00BD, 0}, "frac12;": {0x00BD, 0},
	"frac14": {0x00BC, 0}, "frac14;": {0x00BC, 0},
	"frac34": {0x00BE, 0}, "frac34;": {0x00BE, 0},
	"gt": {0x003E, 0}, "gt;": {0x003E, 0},
	"iacute": {0x00ED, 0}, "iacute;": {0x00ED, 0},
	"icirc": {0x00EE, 0}, "icirc;": {0x00EE, 0},
	"iexcl": {0x00A1, 0}, "iexcl;": {0x00A1, 0},
	"igrave": {0x00EC, 0}, "igrave;": {0x00EC, 0},
	"iquest": {0x00BF, 0}, "iquest;": {0x00BF, 0},
	"iuml": {0x00EF, 0}, "iuml;": {0x00EF, 0},
	"laquo": {0x00AB, 0}, "laquo;": {0x00AB, 0},
	"lt": {0x003C, 0}, "lt;": {0x003C, 0},
	"macr": {0x00AF, 0}, "macr;": {0x00AF, 0},
	"micro": {0x00B5, 0}, "micro;": {0x00B5, 0},
	"middot": {0x00B7, 0}, "middot;": {0x00B7, 0},
	"nbsp": {0x00A0, 0}, "nbsp;": {0x00A0, 0},
	"not": {0x00AC, 0}, "not;": {0x00AC, 0},
	"ntilde": {0x00F1, 0}, "ntilde;": {0x00F1, 0},
	"oacute": {0x00F3, 0}, "oacute;": {0x00F3, 0},
	"ocirc": {0x00F4, 0}, "ocirc;": {0x00F4, 0},
	"ograve": {0x00F2, 0}, "ograve;": {0x00F2, 0},
	"ordf": {0x00AA, 0}, "ordf;": {0x00AA, 0},
	"ordm": {0x00BA, 0}, "ordm;": {0x00BA, 0},
	"oslash": {0x00F8, 0}, "oslash;": {0x00F8, 0},
	"otilde": {0x00F5, 0}, "otilde;": {0x00F5, 0},
	"ouml": {0x00F6, 0}, "ouml;": {0x00F6, 0},
	"para": {0x00B6, 0}, "para;": {0x00B6, 0},
	"plusmn": {0x00B1, 0}, "plusmn;": {0x00B1, 0},
	"pound": {0x00A3, 0}, "pound;": {0x00A3, 0},
	"quot": {0x0022, 0}, "quot;": {0x0022, 0},
	"raquo": {0x00BB, 0}, "raquo;": {0x00BB, 0},
	"reg": {0x00AE, 0}, "reg;": {0x00AE, 0},
	"sect": {0x00A7, 0}, "sect;": {0x00A7, 0},
	"shy": {0x00AD, 0}, "shy;": {0x00AD, 0},
	"sup1": {0x00B9, 0}, "sup1;": {0x00B9, 0},
	"sup2": {0x00B2, 0}, "sup2;": {0x00B2, 0},
	"sup3": {0x00B3, 0}, "sup3;": {0x00B3, 0},
	"szlig": {0x00DF, 0}, "szlig;": {0x00DF, 0},
	"thorn": {0x00FE, 0}, "thorn;": {0x00FE, 0},
	"times": {0x00D7, 0}, "times;": {0x00D7, 0},
	"uacute": {0x00FA, 0}, "uacute;": {0x00FA, 0},
	"ucirc": {0x00FB, 0}, "ucirc;": {0x00FB, 0},
	"ugrave": {0x00F9, 0}, "ugrave;": {0x00F9, 0},
	"uml": {0x00A8, 0}, "uml;": {0x00A8, 0},
	"uuml": {0x00FC, 0}, "uuml;": {0x00FC, 0},
	"yacute": {0x00FD, 0}, "yacute;": {0x00FD, 0},
	"yen": {0x00A5, 0}, "yen;": {0x00A5, 0},
	"yuml": {0x00FF, 0}, "yuml;": {0x00FF, 0},
	"apos;": {0x0027, 0},

	// Semicolon-required references: punctuation and typography.
	"hellip;": {0x2026, 0}, "mdash;": {0x2014, 0}, "ndash;": {0x2013, 0},
	"lsquo;": {0x2018, 0}, "rsquo;": {0x2019, 0}, "ldquo;": {0x201C, 0}, "rdquo;": {0x201D, 0},
	"bull;": {0x2022, 0}, "trade;": {0x2122, 0}, "euro;": {0x20AC, 0}, "permil;": {0x2030, 0},
	"dagger;": {0x2020, 0}, "Dagger;": {0x2021, 0}, "sbquo;": {0x201A, 0}, "bdquo;": {0x201E, 0},
	"spades;": {0x2660, 0}, "clubs;": {0x2663, 0}, "hearts;": {0x2665, 0}, "diams;": {0x2666, 0},

	// Semicolon-required: mathematics.
	"infin;": {0x221E, 0}, "ne;": {0x2260, 0}, "le;": {0x2264, 0}, "ge;": {0x2265, 0},
	"larr;": {0x2190, 0}, "rarr;": {0x2192, 0}, "uarr;": {0x2191, 0}, "darr;": {0x2193, 0}, "harr;": {0x2194, 0},
	"forall;": {0x2200, 0}, "part;": {0x2202, 0}, "exist;": {0x2203, 0}, "empty;": {0x2205, 0},
	"nabla;": {0x2207, 0}, "isin;": {0x2208, 0}, "notin;": {0x2209, 0}, "ni;": {0x220B, 0},
	"prod;": {0x220F, 0}, "sum;": {0x2211, 0}, "minus;": {0x2212, 0}, "lowast;": {0x2217, 0},
	"radic;": {0x221A, 0}, "prop;": {0x221D, 0}, "ang;": {0x2220, 0}, "and;": {0x2227, 0}, "or;": {0x2228, 0},
	"cap;": {0x2229, 0}, "cup;": {0x222A, 0}, "int;": {0x222B, 0}, "there4;": {0x2234, 0},
	"sim;": {0x223C, 0}, "cong;": {0x2245, 0}, "asymp;": {0x2248, 0}, "equiv;": {0x2261, 0},
	"oplus;": {0x2295, 0}, "otimes;": {0x2297, 0}, "perp;": {0x22A5, 0}, "sdot;": {0x22C5, 0},

	// Semicolon-required: Greek letters.
	"Alpha;": {0x0391, 0}, "Beta;": {0x0392, 0}, "Gamma;": {0x0393, 0}, "Delta;": {0x0394, 0},
	"Epsilon;": {0x0395, 0}, "Zeta;": {0x0396, 0}, "Eta;": {0x0397, 0}, "Theta;": {0x0398, 0},
	"Iota;": {0x0399, 0}, "Kappa;": {0x039A, 0}, "Lambda;": {0x039B, 0}, "Mu;": {0x039C, 0},
	"Nu;": {0x039D, 0}, "Xi;": {0x039E, 0}, "Omicron;": {0x039F, 0}, "Pi;": {0x03A0, 0},
	"Rho;": {0x03A1, 0}, "Sigma;": {0x03A3, 0}, "Tau;": {0x03A4, 0}, "Upsilon;": {0x03A5, 0},
	"Phi;": {0x03A6, 0}, "Chi;": {0x03A7, 0}, "Psi;": {0x03A8, 0}, "Omega;": {0x03A9, 0},
	"alpha;": {0x03B1, 0}, "beta;": {0x03B2, 0}, "gamma;": {0x03B3, 0}, "delta;": {0x03B4, 0},
	"epsilon;": {0x03B5, 0}, "zeta;": {0x03B6, 0}, "eta;": {0x03B7, 0}, "theta;": {0x03B8, 0},
	"iota;": {0x03B9, 0}, "kappa;": {0x03BA, 0}, "lambda;": {0x03BB, 0}, "mu;": {0x03BC, 0},
	"nu;": {0x03BD, 0}, "xi;": {0x03BE, 0}, "omicron;": {0x03BF, 0}, "pi;": {0x03C0, 0},
	"rho;": {0x03C1, 0}, "sigma;": {0x03C3, 0}, "tau;": {0x03C4, 0}, "upsilon;": {0x03C5, 0},
	"phi;": {0x03C6, 0}, "chi;": {0x03C7, 0}, "psi;": {0x03C8, 0}, "omega;": {0x03C9, 0},

	// A couple of genuine multi-codepoint references, so the two-scalar
	// expansion path is exercised and not merely theoretical.
	"acE;":  {0x223E, 0x0333},
	"bne;":  {0x003D, 0x20E5},
	"caps;": {0x2229, 0xFE00},
}
