// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

// Closure is a suspended function body plus its captured environment:
// closures reference environments, never the reverse, so there are no
// cycles to break. Implementations come from the external normalizer
// and from the typechecker itself (for a Lam's synthesized type and
// for union constructors); the typechecker only ever calls Apply (for App and Field-as-constructor)
// and RemoveBinder (for merge's dependent-function check).
type Closure interface {
	// Apply substitutes arg for the closure's binder and reduces the
	// result to whnf.
	Apply(arg Value) Value

	// RemoveBinder succeeds iff the closure's body does not mention
	// its own binder, in which case it returns that body's value with
	// the binder's de Bruijn indices shifted down by one. This is the
	// dependent-function check `merge` needs: a with-type handler's
	// return type must not depend on the variant payload.
	RemoveBinder() (Value, bool)
}

// ConstClosure is a closure whose body provably never refers to its
// binder — e.g. the type the typechecker gives a with-type union
// constructor, whose result is the union type whatever the payload.
// RemoveBinder is trivially true; Apply ignores the argument.
type ConstClosure struct {
	Body Value
}

func (c ConstClosure) Apply(Value) Value           { return c.Body }
func (c ConstClosure) RemoveBinder() (Value, bool) { return c.Body, true }
