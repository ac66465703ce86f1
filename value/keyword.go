package value

// KeywordKind discriminates the four shapes a Keyword can take, per
// cljrs-reader/src/keyword.rs.
type KeywordKind int

const (
	KeywordUnqualified KeywordKind = iota
	KeywordQualified
	KeywordSelfQualified
	KeywordAliasQualified
)

// Keyword covers :foo, :foo/bar, ::foo and ::foo/bar.
type Keyword struct {
	kind      KeywordKind
	Namespace string
	Alias     string
	Name      string
}

// UnqualifiedKeyword builds :name.
func UnqualifiedKeyword(name string) Keyword {
	return Keyword{kind: KeywordUnqualified, Name: name}
}

// QualifiedKeyword builds :namespace/name.
func QualifiedKeyword(namespace, name string) Keyword {
	return Keyword{kind: KeywordQualified, Namespace: namespace, Name: name}
}

// SelfQualifiedKeyword builds ::name, to be resolved in the current
// namespace by a later stage.
func SelfQualifiedKeyword(name string) Keyword {
	return Keyword{kind: KeywordSelfQualified, Name: name}
}

// AliasQualifiedKeyword builds ::alias/name.
func AliasQualifiedKeyword(alias, name string) Keyword {
	return Keyword{kind: KeywordAliasQualified, Alias: alias, Name: name}
}

// Kind reports which of the four shapes the keyword has.
func (k Keyword) Kind() KeywordKind { return k.kind }

// IsQualified reports whether the keyword carries an explicit namespace
// (not an alias, and not self-qualified).
func (k Keyword) IsQualified() bool { return k.kind == KeywordQualified }

// WithNamespace returns a Qualified keyword carrying ns as its namespace,
// preserving the keyword's Name. Used by the namespaced-map reader to
// qualify unqualified keys against the map's namespace tag; only
// meaningful when called on an Unqualified keyword.
func (k Keyword) WithNamespace(ns string) Keyword {
	return QualifiedKeyword(ns, k.Name)
}

func (k Keyword) String() string {
	switch k.kind {
	case KeywordQualified:
		return ":" + k.Namespace + "/" + k.Name
	case KeywordSelfQualified:
		return "::" + k.Name
	case KeywordAliasQualified:
		return "::" + k.Alias + "/" + k.Name
	default:
		return ":" + k.Name
	}
}
