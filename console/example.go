package console

// ExampleDocument is the built-in share document: four shares of
// f(x) = x^2 + 3 with threshold 3, values in bases 2, 4 and 10.
const ExampleDocument = `{
    "keys": {
        "n": 4,
        "k": 3
    },
    "1": {
        "base": "10",
        "value": "4"
    },
    "2": {
        "base": "2",
        "value": "111"
    },
    "3": {
        "base": "10",
        "value": "12"
    },
    "6": {
        "base": "4",
        "value": "213"
    }
}`
