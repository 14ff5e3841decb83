package linear

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/scottcagno/collections/pkg/hashmap"
)

// Dump renders every slot of the table to w, one row per slot
func (t *Table[K, V]) Dump(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Slot", "State", "Hash", "Key", "Value"})
	tw.SetAutoFormatHeaders(false)
	for i := 0; i < t.Cap(); i++ {
		e := t.entries.At(i)
		if e.state != hashmap.Valid {
			tw.Append([]string{strconv.Itoa(i), e.state.String(), "", "", ""})
			continue
		}
		tw.Append([]string{
			strconv.Itoa(i),
			e.state.String(),
			fmt.Sprintf("%08x", e.hash),
			fmt.Sprint(e.key),
			fmt.Sprint(e.value),
		})
	}
	tw.SetFooter([]string{"", "", "tombs " + strconv.Itoa(t.tombs), "len " + strconv.Itoa(t.count), "cap " + strconv.Itoa(t.Cap())})
	tw.Render()
}
