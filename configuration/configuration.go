package configuration

type Configuration struct {
	File         string `usage:"JSON array or JSON lines file with the rows"`
	Columns      string `usage:"comma separated column keys, field:Title renames; empty shows every field"`
	Sortable     string `usage:"comma separated sortable column keys, * for all"`
	RowKey       string `usage:"field holding the row identity key"`
	Defaults     string `usage:"JSON object with field defaults: literals, uuid(), unixnano() or auto()"`
	Where        string `usage:"JSON filter, e.g. {\"age\":{\"$gt\":30}}"`
	Query        string `usage:"free text search"`
	Sort         string `usage:"column to sort by, prefix with - for descending"`
	PageSize     int    `usage:"rows per page, 0 disables pagination"`
	Page         int    `usage:"page to display"`
	Select       string `usage:"comma separated row keys to select"`
	SelectPage   bool   `usage:"select every row of the displayed page"`
	Locale       string `usage:"locale used to compare text, e.g. es or de-CH"`
	EmptyMessage string `usage:"message shown when no row is displayed"`
	LogLevel     string `usage:"debug | info | warn | error"`
	Version      bool   `usage:"show version and exit"`
	ShowConfig   bool   `usage:"print config"`
}
