package patterns

// builtin is the built-in pattern table. Sources are kept exactly as authored;
// anchoring differs per entry and is recorded in Mode.
var builtin = []Definition{
	// Emails
	{Category: Emails, Name: "email", Source: `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`, Description: "Validates email addresses"},

	// URLs
	{Category: URLs, Name: "url", Source: `^(https?:\/\/)?([a-zA-Z0-9.-]+)\.([a-zA-Z]{2,})(\/[^\s]*)?$`, Description: "Validates URLs"},
	{Category: URLs, Name: "youtubeUrl", Source: `^(https?:\/\/)?(www\.)?(youtube\.com\/watch\?v=|youtu\.be\/)[a-zA-Z0-9_-]{11}$`, Description: "Matches YouTube video URLs"},

	// Phone numbers
	{Category: PhoneNumbers, Name: "phoneNumber", Source: `^\+?[1-9]\d{1,14}$`, Description: "Validates phone numbers (E.164 format)"},
	{Category: PhoneNumbers, Name: "phoneInternational", Source: `^\+?[1-9]\d{1,14}$`, Description: "Matches international phone numbers (E.164 format)"},

	// Postal codes
	{Category: PostalCodes, Name: "postalCode", Source: `^\d{4,10}$`, Description: "Validates postal codes (4-10 digits)"},
	{Category: PostalCodes, Name: "zipCode", Source: `^\d{5}(-\d{4})?$`, Description: "Validates ZIP codes (US format)"},

	// Dates and times
	{Category: Dates, Name: "dateYYYYMMDD", Source: `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`, Description: "Date format YYYY-MM-DD"},
	{Category: Dates, Name: "dateTime", Source: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, Description: "Matches ISO 8601 DateTime format (e.g., 2025-01-01T12:00:00Z)"},
	{Category: Dates, Name: "timeHHMMSS", Source: `^(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d$`, Description: "Time format HH:MM:SS"},
	{Category: Dates, Name: "timeHHMM", Source: `^(?:[01]?[0-9]|2[0-3]):([0-5][0-9])$`, Description: "Matches time in 24-hour format HH:MM"},
	{Category: Dates, Name: "timeDuration", Source: `^([0-9]{2}):([0-5][0-9]):([0-5][0-9])$`, Description: "Matches time duration in HH:MM:SS format"},

	// Text
	{Category: Text, Name: "alphanumeric", Source: `^[a-zA-Z0-9]+$`, Description: "Matches alphanumeric strings"},
	{Category: Text, Name: "alphanumericWithSpaces", Source: `^[a-zA-Z0-9\s]+$`, Description: "Matches alphanumeric characters including spaces"},
	{Category: Text, Name: "onlyAlphabets", Source: `^[a-zA-Z]+$`, Description: "Matches only alphabetic strings"},
	{Category: Text, Name: "nonAlphanumeric", Source: `[^a-zA-Z0-9]`, Mode: ModeSearch, Description: "Matches non-alphanumeric characters"},
	{Category: Text, Name: "whitespaceOnly", Source: `^\s*$`, Description: "Matches strings containing only whitespace"},
	{Category: Text, Name: "whitespaceTrimmer", Source: `^\s+|\s+$`, Flags: FlagGlobal, Mode: ModeSearch, Description: "Matches leading and trailing whitespace"},
	{Category: Text, Name: "numbersOnly", Source: `^\d+$`, Description: "Matches numeric strings"},
	{Category: Text, Name: "escapedCharacters", Source: `\\[\\'"\nrtbfa]`, Mode: ModeSearch, Description: "Matches escaped characters"},
	{Category: Text, Name: "strongPassword", Source: `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]{10,}$`, Engine: EngineBacktrack, Description: "Strong password validation"},
	{Category: Text, Name: "username", Source: `^[a-zA-Z0-9_]{3,16}$`, Description: "Matches valid usernames (3 to 16 chars, letters, numbers, underscores)"},
	{Category: Text, Name: "slug", Source: `^[a-z0-9]+(?:-[a-z0-9]+)*$`, Description: "Matches SEO-friendly slugs"},
	{Category: Text, Name: "palindrome", Source: `^(\w)(\w?)(\w)\2\1$`, Engine: EngineBacktrack, Description: "Matches palindromes (basic example)"},
	{Category: Text, Name: "hashtag", Source: `^#(\w+)$`, Description: "Matches hashtags (e.g., #regex)"},
	{Category: Text, Name: "twitterHandle", Source: `^@?([a-zA-Z0-9_]){1,15}$`, Description: "Matches Twitter handles"},
	{Category: Text, Name: "gitHubUsername", Source: `^[a-zA-Z0-9]([a-zA-Z0-9-]{1,38}[a-zA-Z0-9])?$`, Description: "Matches valid GitHub usernames"},
	{Category: Text, Name: "alphaNumericWithSpecialChars", Source: `^[a-zA-Z0-9!@#$%^&*()_+=\[\]{};:'",<>\./?\\|]*$`, Description: "Matches alphanumeric strings with special characters"},

	// HTML and XML
	{Category: HTML, Name: "htmlTags", Source: `<("[^"]*"|'[^']*'|[^'">])*>`, Mode: ModeSearch, Description: "Matches HTML tags"},
	{Category: HTML, Name: "htmlEntity", Source: `&[a-zA-Z]+;`, Mode: ModeSearch, Description: "Matches HTML entities (e.g., &amp;)"},
	{Category: HTML, Name: "htmlComment", Source: `<!--[\s\S]*?-->`, Mode: ModeSearch, Description: "Matches HTML comments"},
	{Category: HTML, Name: "xmlTag", Source: `<\/?[\w\s="/']*[^<>]*>`, Mode: ModeSearch, Description: "Matches XML tags"},
	{Category: HTML, Name: "htmlCommentTag", Source: `<!--[\s\S]*?-->`, Mode: ModeSearch, Description: "Matches HTML comment tags"},

	// Files, media and numeric formats
	{Category: Files, Name: "fileExtension", Source: `\.(jpg|jpeg|png|gif|bmp|svg|pdf|doc|docx|xls|xlsx|txt)$`, Flags: FlagIgnoreCase, Mode: ModeSearch, Description: "Matches file extensions"},
	{Category: Files, Name: "base64", Source: `^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`, Description: "Matches Base64 strings"},
	{Category: Files, Name: "currencyFormat", Source: `^\$?(\d{1,3})(,\d{3})*(\.\d{2})?$`, Description: "Currency format (e.g., $1,234.56)"},
	{Category: Files, Name: "floatingPointNumber", Source: `^-?\d+(\.\d+)?$`, Description: "Matches floating-point numbers"},
	{Category: Files, Name: "negativeDecimal", Source: `^-\d+\.\d+$`, Description: "Matches negative decimal numbers"},
	{Category: Files, Name: "positiveInteger", Source: `^[1-9]\d*$`, Description: "Matches positive integers"},
	{Category: Files, Name: "negativeInteger", Source: `^-[1-9]\d*$`, Description: "Matches negative integers"},
	{Category: Files, Name: "signedNumber", Source: `^([+-]?\d+)$`, Description: "Matches signed numbers"},
	{Category: Files, Name: "scientificNotation", Source: `^[+-]?\d+(\.\d+)?([eE][+-]?\d+)?$`, Description: "Matches scientific notation"},
	{Category: Files, Name: "romanNumerals", Source: `^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`, Description: "Matches Roman numerals"},
	{Category: Files, Name: "unicodeCharacter", Source: `\\u[0-9a-fA-F]{4}`, Mode: ModeSearch, Description: `Matches Unicode characters in form \uXXXX`},

	// IP addresses
	{Category: IPs, Name: "ipv4", Source: `^(25[0-5]|2[0-4][0-9]|[0-1]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[0-1]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[0-1]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[0-1]?[0-9][0-9]?)$`, Description: "Validates IPv4 addresses"},
	{Category: IPs, Name: "ipv6", Source: `([0-9a-fA-F]{1,4}:){7}([0-9a-fA-F]{1,4})`, Mode: ModeSearch, Description: "Validates IPv6 addresses"},
	{Category: IPs, Name: "ipv4Shortened", Source: `^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`, Description: "Matches shorthand IPv4 address without leading zeros"},
	// The IPv6 alternative is only end-anchored.
	{Category: IPs, Name: "matchIP", Source: `^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$|([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`, Mode: ModeSearch, Description: "Matches both IPv4 and IPv6"},

	// Credit cards
	{Category: CreditCards, Name: "creditCard", Source: `^4[0-9]{12}(?:[0-9]{3})?$|^5[1-5][0-9]{14}$|^3[47][0-9]{13}$|^6(?:011|5[0-9]{2})[0-9]{12}$`, Description: "Matches Visa, MasterCard, AmEx, Discover cards"},
	{Category: CreditCards, Name: "creditCardType", Source: `^(4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})$`, Description: "Matches Visa, MasterCard, AmEx, Discover"},

	// Others
	{Category: Others, Name: "uuid", Source: `^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-4[a-fA-F0-9]{3}-[89aAbB][a-fA-F0-9]{3}-[a-fA-F0-9]{12}$`, Description: "Validates UUID"},
	{Category: Others, Name: "json", Source: `^[\],:{}\s]*$`, Description: "Basic JSON string match"},
	{Category: Others, Name: "base64Url", Source: `^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`, Description: "Matches Base64 URL encoding"},
	{Category: Others, Name: "xmlComment", Source: `<!--[\s\S]*?-->`, Mode: ModeSearch, Description: "Matches XML comments"},
	{Category: Others, Name: "htmlCommentTag", Source: `<!--[\s\S]*?-->`, Mode: ModeSearch, Description: "Matches HTML comment tags"},
}

// Definitions returns a copy of the built-in pattern table.
func Definitions() []Definition {
	out := make([]Definition, len(builtin))
	copy(out, builtin)
	return out
}
