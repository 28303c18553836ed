package query

import "strconv"

// ParamKey identifies a local parameter. The key set is closed; each key
// fixes the type of its value, which is why Param values are built through
// the constructors below rather than struct literals.
type ParamKey string

const (
	// ParamDefaultField is the df parameter; its value is a field name.
	ParamDefaultField ParamKey = "df"
	// ParamOp is the q.op parameter; its value is a default operator.
	ParamOp ParamKey = "q.op"
	// ParamCache is the cache parameter; its value is a boolean.
	ParamCache ParamKey = "cache"
	// ParamCost is the cost parameter; its value is an integer.
	ParamCost ParamKey = "cost"
)

// Param is a single key/value local parameter.
type Param struct {
	key   ParamKey
	value string
}

// DefaultFieldParam sets the default field for the annotated query.
func DefaultFieldParam(field string) Param {
	return Param{key: ParamDefaultField, value: field}
}

// OpParam sets the default boolean operator, typically "AND" or "OR".
func OpParam(op string) Param {
	return Param{key: ParamOp, value: op}
}

// CacheParam controls filter caching for the annotated query.
func CacheParam(on bool) Param {
	return Param{key: ParamCache, value: strconv.FormatBool(on)}
}

// CostParam sets the evaluation cost of the annotated query.
func CostParam(cost int) Param {
	return Param{key: ParamCost, value: strconv.Itoa(cost)}
}

// Key returns the parameter key.
func (p Param) Key() ParamKey { return p.key }

// Value returns the parameter value in its rendered form: strings unquoted,
// booleans as true/false, integers in decimal.
func (p Param) Value() string { return p.value }
