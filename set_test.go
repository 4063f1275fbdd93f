// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package is

import (
	"reflect"

	"github.com/stretchr/testify/require"
)

func (s *Zuite) TestSet() {
	set := NewSet(String, Null, String, reflect.TypeOf(account{}))
	require.Equal(s.T(), 3, set.Len())
	require.Equal(s.T(), []interface{}{String, Null, reflect.TypeOf(account{})}, set.Members())
	require.True(s.T(), set.Has(String))
	require.True(s.T(), set.Has(Null))
	require.False(s.T(), set.Has(nil))
	require.False(s.T(), set.Has(Int))

	// members are copied out
	members := set.Members()
	members[0] = Int
	require.True(s.T(), set.Has(String))
	require.False(s.T(), set.Has(Int))
}

func (s *Zuite) TestSet_unhashableMembers() {
	set := NewSet([]interface{}{Int}, []interface{}{Int})
	require.Equal(s.T(), 2, set.Len())
	require.True(s.T(), set.Has([]interface{}{Int}))
	require.False(s.T(), set.Has([]interface{}{String}))
}

func (s *Zuite) TestSet_arbitraryMembers() {
	// comparable types may hold unhashable values
	holder := struct{ V interface{} }{[]int{}}
	set := NewSet(holder, holder, 5)
	require.Equal(s.T(), 3, set.Len())
	require.True(s.T(), set.Has(holder))
	require.False(s.T(), set.Has(struct{ V interface{} }{[]int{1}}))
	require.False(s.T(), IsDescriptor(set))
}

func (s *Zuite) TestSet_zeroValue() {
	var nilSet *Set
	require.Equal(s.T(), 0, nilSet.Len())
	require.Nil(s.T(), nilSet.Members())
	require.False(s.T(), nilSet.Has(Int))

	var set Set
	set.Add(Int).Add(Int)
	require.Equal(s.T(), 1, set.Len())
	require.Equal(s.T(), "<int>", MustStringify(&set))
}
