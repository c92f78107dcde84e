/*
Package ordset holds the small vocabulary shared by the ordered collections of this
module: orderings (three-way comparison functions) and monoids.

Collections themselves live in sub-packages, most notably persistent/set, which
implements immutable, size-balanced ordered sets with efficient set algebra.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordset
