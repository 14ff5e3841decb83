package robin

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
	tw.SetHeader([]string{"Slot", "State", "Hash", "Home", "Dist", "Key", "Value"})
	tw.SetAutoFormatHeaders(false)
	for i := 0; i < t.Cap(); i++ {
		st := *t.cols.states.At(i)
		if st != hashmap.Valid {
			tw.Append([]string{strconv.Itoa(i), st.String(), "", "", "", "", ""})
			continue
		}
		h := *t.cols.hashes.At(i)
		tw.Append([]string{
			strconv.Itoa(i),
			st.String(),
			fmt.Sprintf("%08x", h),
			strconv.Itoa(t.home(h)),
			strconv.Itoa(t.distance(i, h)),
			fmt.Sprint(*t.cols.keys.At(i)),
			fmt.Sprint(*t.cols.values.At(i)),
		})
	}
	tw.SetFooter([]string{"", "", "", "", "", "len " + strconv.Itoa(t.count), "cap " + strconv.Itoa(t.Cap())})
	tw.Render()
}
