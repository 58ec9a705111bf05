package inflection

// TableName converts a class-style name to a plural snake_case table name.
// Only the trailing token is pluralized since the rules anchor at the end.
// Example: "BlogPost" -> "blog_posts"
func (i *Inflector) TableName(s string) string {
	return i.Plural(Underscore(s))
}

// ClassName converts a table-style name to a singular camelCase name.
// Example: "blog_posts" -> "blogPost"
func (i *Inflector) ClassName(s string) string {
	return i.Singular(CamelCase(s, false))
}

// ForeignKey converts a class-style name to a foreign key column name.
// Example: "Author" -> "author_id"
func (i *Inflector) ForeignKey(s string) string {
	if s == "" {
		return ""
	}
	return Underscore(s) + "_id"
}

// TableName uses the default Inflector.
func TableName(s string) string { return std.TableName(s) }

// ClassName uses the default Inflector.
func ClassName(s string) string { return std.ClassName(s) }

// ForeignKey uses the default Inflector.
func ForeignKey(s string) string { return std.ForeignKey(s) }
