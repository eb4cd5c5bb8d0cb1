// Package deepclone provides a reflection-based clone policy for
// valueptr.Ref, for pointee types that cannot implement their own Clone
// method.
//
// The copy is made with github.com/huandu/go-clone. Unexported fields are
// copied as well. Cloner.Slowly handles pointer cycles at a higher cost.
package deepclone
