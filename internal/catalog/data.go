package catalog

// Categories, sorted alphabetically.
var Categories = []string{
	"Array",
	"Conversion",
	"Data & Query",
	"Date & Time",
	"Informational",
	"Logical",
	"Looping",
	"Mathematical",
	"People",
	"Text",
}

var Functions = []Function{
	// Array
	{
		Name:        "append",
		Syntax:      "append(array, value)",
		Description: "Adds a value to the end of an array.",
		Example:     "append({1, 2}, 3) → {1, 2, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_array_append.html",
	},
	{
		Name:        "insert",
		Syntax:      "insert(array, value, index)",
		Description: "Inserts a value at the specified index.",
		Example:     "insert({1, 3}, 2, 2) → {1, 2, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_array_insert.html",
	},
	{
		Name:        "remove",
		Syntax:      "remove(array, index)",
		Description: "Removes the item at the specified index.",
		Example:     "remove({1, 2, 3}, 2) → {1, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_array_remove.html",
	},
	{
		Name:        "index",
		Syntax:      "index(array, index, [default])",
		Description: "Returns the item at the specified index, with optional default.",
		Example:     `index({"a", "b", "c"}, 2) → "b"`,
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_array_index.html",
	},
	{
		Name:        "contains",
		Syntax:      "contains(array, value)",
		Description: "Returns true if the array contains the value.",
		Example:     "contains({1, 2, 3}, 2) → true",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_set_contains.html",
	},
	{
		Name:        "wherecontains",
		Syntax:      "wherecontains(value, array)",
		Description: "Returns indices where value appears in array.",
		Example:     `wherecontains("b", {"a", "b", "c"}) → 2`,
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_set_wherecontains.html",
	},
	{
		Name:        "union",
		Syntax:      "union(array1, array2)",
		Description: "Returns combined unique values from both arrays.",
		Example:     "union({1, 2}, {2, 3}) → {1, 2, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_set_union.html",
	},
	{
		Name:        "intersection",
		Syntax:      "intersection(array1, array2)",
		Description: "Returns values that exist in both arrays.",
		Example:     "intersection({1, 2, 3}, {2, 3, 4}) → {2, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_set_intersection.html",
	},
	{
		Name:        "distinct",
		Syntax:      "distinct(array)",
		Description: "Returns unique values from the array.",
		Example:     "distinct({1, 2, 2, 3}) → {1, 2, 3}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_set_distinct.html",
	},
	{
		Name:        "reverse",
		Syntax:      "reverse(array)",
		Description: "Returns the array in reverse order.",
		Example:     "reverse({1, 2, 3}) → {3, 2, 1}",
		Category:    "Array",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_array_reverse.html",
	},

	// Conversion
	{
		Name:        "tostring",
		Syntax:      "tostring(value)",
		Description: "Converts a value to text.",
		Example:     `tostring(123) → "123"`,
		Category:    "Conversion",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_conversion_tostring.html",
	},
	{
		Name:        "tointeger",
		Syntax:      "tointeger(value)",
		Description: "Converts a value to an integer.",
		Example:     `tointeger("123") → 123`,
		Category:    "Conversion",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_conversion_tointeger.html",
	},
	{
		Name:        "todecimal",
		Syntax:      "todecimal(value)",
		Description: "Converts a value to a decimal number.",
		Example:     `todecimal("3.14") → 3.14`,
		Category:    "Conversion",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_conversion_todecimal.html",
	},
	{
		Name:        "todate",
		Syntax:      "todate(value)",
		Description: "Converts a value to a date.",
		Example:     `todate("2026-02-05") → 2026-02-05`,
		Category:    "Conversion",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_conversion_todate.html",
	},
	{
		Name:        "todatetime",
		Syntax:      "todatetime(value)",
		Description: "Converts a value to a datetime.",
		Example:     `todatetime("2026-02-05 14:30:00")`,
		Category:    "Conversion",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_conversion_todatetime.html",
	},

	// Data & Query
	{
		Name:        "a!localVariables",
		Syntax:      "a!localVariables(local!var1: value, ...expression)",
		Description: "Defines local variables for use in an expression.",
		Example:     "a!localVariables(local!x: 10, local!y: 20, local!x + local!y) → 30",
		Category:    "Data & Query",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_evaluation_a_localvariables.html",
	},
	{
		Name:        "a!queryRecordType",
		Syntax:      "a!queryRecordType(recordType, fields, filters, pagingInfo)",
		Description: "Queries a record type with filtering, sorting, and paging.",
		Example:     "a!queryRecordType(recordType: recordType!Employee, pagingInfo: a!pagingInfo(1, 100))",
		Category:    "Data & Query",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_records_a_queryrecordtype.html",
	},
	{
		Name:        "a!queryEntity",
		Syntax:      "a!queryEntity(entity, query, fetchTotalCount)",
		Description: "Queries a data store entity.",
		Example:     "a!queryEntity(entity: cons!DS_ENTITY, query: a!query(...))",
		Category:    "Data & Query",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_system_a_queryentity.html",
	},
	{
		Name:        "a!pagingInfo",
		Syntax:      "a!pagingInfo(startIndex, batchSize, sort)",
		Description: "Defines paging for queries.",
		Example:     `a!pagingInfo(startIndex: 1, batchSize: 50, sort: a!sortInfo(field: "name", ascending: true))`,
		Category:    "Data & Query",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_system_a_paginginfo.html",
	},

	// Date & Time
	{
		Name:        "today",
		Syntax:      "today()",
		Description: "Returns the current date (without time).",
		Example:     "today() → 2026-02-05",
		Category:    "Date & Time",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_date_and_time_today.html",
	},
	{
		Name:        "now",
		Syntax:      "now()",
		Description: "Returns the current date and time.",
		Example:     "now() → 2026-02-05 08:45:00",
		Category:    "Date & Time",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_date_and_time_now.html",
	},
	{
		Name:        "date",
		Syntax:      "date(year, month, day)",
		Description: "Creates a date from year, month, and day values.",
		Example:     "date(2026, 2, 5) → 2026-02-05",
		Category:    "Date & Time",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_date_and_time_date.html",
	},

	// Informational
	{
		Name:        "isnull",
		Syntax:      "isnull(value)",
		Description: "Returns true if value is null.",
		Example:     "isnull(null) → true",
		Category:    "Informational",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_informational_isnull.html",
	},
	{
		Name:        "a!isNullOrEmpty",
		Syntax:      "a!isNullOrEmpty(value)",
		Description: "Returns true if value is null, empty string, or empty list.",
		Category:    "Informational",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_informational_a_isnullorempty.html",
	},

	// Logical
	{
		Name:        "if",
		Syntax:      "if(condition, trueValue, falseValue)",
		Description: "Returns trueValue if condition is true, otherwise falseValue.",
		Example:     `if(1 > 0, "Yes", "No") → "Yes"`,
		Category:    "Logical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_logical_if.html",
	},
	{
		Name:        "and",
		Syntax:      "and(value1, value2, ...)",
		Description: "Returns true if ALL values are true.",
		Example:     "and(true, true, false) → false",
		Category:    "Logical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_logical_and.html",
	},
	{
		Name:        "or",
		Syntax:      "or(value1, value2, ...)",
		Description: "Returns true if ANY value is true.",
		Example:     "or(true, false, false) → true",
		Category:    "Logical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_logical_or.html",
	},
	{
		Name:        "not",
		Syntax:      "not(value)",
		Description: "Returns the logical opposite of value.",
		Example:     "not(true) → false",
		Category:    "Logical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_logical_not.html",
	},
	{
		Name:        "a!match",
		Syntax:      "a!match(value, equals, then, ...default)",
		Description: "Pattern matching - returns result for first match.",
		Example:     `a!match(local!status, equals: "A", then: "Active", equals: "I", then: "Inactive", default: "Unknown")`,
		Category:    "Logical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_evaluation_a_match.html",
	},

	// Looping
	{
		Name:        "a!forEach",
		Syntax:      "a!forEach(items, expression)",
		Description: "Evaluates an expression for each item. Use fv!item, fv!index, fv!isFirst, fv!isLast.",
		Example:     "a!forEach({1,2,3}, fv!item * 2) → {2, 4, 6}",
		Category:    "Looping",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_looping_a_foreach.html",
	},
	{
		Name:        "apply",
		Syntax:      "apply(function, array)",
		Description: "Applies a function to each element of an array.",
		Example:     "apply(fn!abs, {-1, 2, -3}) → {1, 2, 3}",
		Category:    "Looping",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_looping_apply.html",
	},
	{
		Name:        "reduce",
		Syntax:      "reduce(function, initial, array)",
		Description: "Reduces an array to a single value using a function.",
		Example:     "reduce(fn!sum, 0, {1, 2, 3}) → 6",
		Category:    "Looping",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_looping_reduce.html",
	},

	// Mathematical
	{
		Name:        "sum",
		Syntax:      "sum(value1, value2, ...)",
		Description: "Returns the sum of all values.",
		Example:     "sum(1, 2, 3, 4, 5) → 15",
		Category:    "Mathematical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_statistical_sum.html",
	},
	{
		Name:        "average",
		Syntax:      "average(value1, value2, ...)",
		Description: "Returns the average of all values.",
		Example:     "average(10, 20, 30) → 20",
		Category:    "Mathematical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_statistical_average.html",
	},
	{
		Name:        "round",
		Syntax:      "round(number, [decimals])",
		Description: "Rounds a number to the specified decimal places.",
		Example:     "round(3.14159, 2) → 3.14",
		Category:    "Mathematical",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_mathematical_round.html",
	},

	// People
	{
		Name:        "user",
		Syntax:      "user(username, property)",
		Description: "Returns user information by username.",
		Example:     `user("john.doe", "firstName") → "John"`,
		Category:    "People",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_people_user.html",
	},
	{
		Name:        "group",
		Syntax:      "group(groupId, property)",
		Description: "Returns group information by ID.",
		Example:     `group(123, "name") → "Administrators"`,
		Category:    "People",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_people_group.html",
	},

	// Text
	{
		Name:        "concat",
		Syntax:      "concat(value1, value2, ...)",
		Description: "Concatenates multiple values into a single text string.",
		Example:     `concat("Hello", " ", "World") → "Hello World"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_concat.html",
	},
	{
		Name:        "left",
		Syntax:      "left(text, numChars)",
		Description: "Returns the specified number of characters from the beginning.",
		Example:     `left("Appian", 3) → "App"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_left.html",
	},
	{
		Name:        "right",
		Syntax:      "right(text, numChars)",
		Description: "Returns the specified number of characters from the end.",
		Example:     `right("Appian", 3) → "ian"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_right.html",
	},
	{
		Name:        "len",
		Syntax:      "len(text)",
		Description: "Returns the number of characters in a text string.",
		Example:     `len("Appian") → 6`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_len.html",
	},
	{
		Name:        "upper",
		Syntax:      "upper(text)",
		Description: "Converts text to uppercase.",
		Example:     `upper("appian") → "APPIAN"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_upper.html",
	},
	{
		Name:        "lower",
		Syntax:      "lower(text)",
		Description: "Converts text to lowercase.",
		Example:     `lower("APPIAN") → "appian"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_lower.html",
	},
	{
		Name:        "trim",
		Syntax:      "trim(text)",
		Description: "Removes leading and trailing whitespace.",
		Example:     `trim("  hello  ") → "hello"`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_trim.html",
	},
	{
		Name:        "split",
		Syntax:      "split(text, delimiter)",
		Description: "Splits text into an array using the specified delimiter.",
		Example:     `split("a,b,c", ",") → {"a", "b", "c"}`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_split.html",
	},
	{
		Name:        "find",
		Syntax:      "find(searchText, text, [startIndex])",
		Description: "Returns the position of searchText within text (case-sensitive).",
		Example:     `find("pp", "Appian") → 2`,
		Category:    "Text",
		DocURL:      "https://docs.appian.com/suite/help/25.4/fnc_text_find.html",
	},
}

var Recipes = []Recipe{
	{
		Title:       "Truncate text with ellipsis",
		Description: "Truncate text after 50 characters and add ellipsis.",
		Code: `if(
  len(ri!text) > 50,
  left(ri!text, 50) & "...",
  ri!text
)`,
		Category: "Text",
	},
	{
		Title:       "Display full name from username",
		Description: "Get a user's first and last name.",
		Code: `if(
  isnull(ri!user),
  "",
  user(ri!user, "firstName") & " " & user(ri!user, "lastName")
)`,
		Category: "People",
	},
	{
		Title:       "Next anniversary date",
		Description: "Calculate the next anniversary from a start date.",
		Code: `if(
  or(
    and(month(ri!start) <= month(today()), day(ri!start) <= day(today())),
    and(month(ri!start) < month(today()), day(ri!start) > day(today()))
  ),
  date(1 + year(today()), month(ri!start), day(ri!start)),
  date(year(today()), month(ri!start), day(ri!start))
)`,
		Category: "Date & Time",
	},
	{
		Title:       "Map array to dictionaries",
		Description: "Wrap each array item in a dictionary.",
		Code:        `a!forEach(ri!array, {value: fv!item})`,
		Category:    "Array",
	},
	{
		Title:       "Sum a numeric field across items",
		Description: "Total one field over a list of dictionaries.",
		Code: `sum(
  a!forEach(ri!items, fv!item.amount)
)`,
		Category: "Mathematical",
	},
}

var ConnectedSystems = []ConnectedSystem{
	{
		Name:        "HTTP Connected System",
		Description: "Generic REST integration with configurable authentication.",
		Category:    "Integration",
		DocURL:      "https://docs.appian.com/suite/help/25.4/http_connected_system.html",
	},
	{
		Name:        "OpenAI",
		Description: "Chat completions and embeddings via the OpenAI API.",
		Category:    "AI",
		DocURL:      "https://docs.appian.com/suite/help/25.4/openai_cs.html",
	},
	{
		Name:        "Salesforce",
		Description: "Read and write Salesforce objects.",
		Category:    "CRM",
		DocURL:      "https://docs.appian.com/suite/help/25.4/Salesforce_Connected_System.html",
	},
	{
		Name:        "SharePoint",
		Description: "Access SharePoint sites, lists, and documents.",
		Category:    "Content",
		DocURL:      "https://docs.appian.com/suite/help/25.4/SharePoint_Connected_System.html",
	},
	{
		Name:        "Amazon S3",
		Description: "Store and retrieve objects in S3 buckets.",
		Category:    "Storage",
		DocURL:      "https://docs.appian.com/suite/help/25.4/Amazon_S3_Connected_System.html",
	},
}
