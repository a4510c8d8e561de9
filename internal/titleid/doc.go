// Package titleid classifies title identifiers and renders listing lines.
//
// A title identifier splits into a category (high 32 bits) and a code (low
// 32 bits). The category maps onto a fixed table of labels; the code renders
// as four printable characters that double as the key into a name database.
// Formatting takes its name lookup as an explicit argument and holds no state.
package titleid
