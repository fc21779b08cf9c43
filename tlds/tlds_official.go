package tlds

// Official is an (unsorted) list of public top-level domains (TLDs) and effective
// top-level domains (eTLDs), normally kept current by a generator pulling
// https://data.iana.org/TLD/tlds-alpha-by-domain.txt and
// https://publicsuffix.org/list/public_suffix_list.dat. This is the
// hand-seeded subset shipped with this module, covering the generic and
// country-code TLDs commonly seen in test fixtures and day-to-day URLs.
var Official = []string{
	`com`, `org`, `net`, `edu`, `gov`, `mil`, `int`, `info`, `biz`, `name`,
	`pro`, `coop`, `museum`, `aero`, `jobs`, `mobi`, `travel`, `tel`, `asia`,
	`cat`, `xxx`, `app`, `dev`, `io`, `ai`, `co`, `me`, `tv`, `xyz`,
	`ac`, `ad`, `ae`, `af`, `ag`, `ai`, `al`, `am`, `ao`, `aq`, `ar`, `as`,
	`at`, `au`, `aw`, `ax`, `az`, `ba`, `bb`, `bd`, `be`, `bf`, `bg`, `bh`,
	`bi`, `bj`, `bm`, `bn`, `bo`, `br`, `bs`, `bt`, `bw`, `by`, `bz`, `ca`,
	`cc`, `cd`, `cf`, `cg`, `ch`, `ci`, `ck`, `cl`, `cm`, `cn`, `cr`, `cu`,
	`cv`, `cw`, `cx`, `cy`, `cz`, `de`, `dj`, `dk`, `dm`, `do`, `dz`, `ec`,
	`ee`, `eg`, `er`, `es`, `et`, `eu`, `fi`, `fj`, `fk`, `fm`, `fo`, `fr`,
	`ga`, `gd`, `ge`, `gf`, `gg`, `gh`, `gi`, `gl`, `gm`, `gn`, `gp`, `gq`,
	`gr`, `gs`, `gt`, `gu`, `gw`, `gy`, `hk`, `hm`, `hn`, `hr`, `ht`, `hu`,
	`id`, `ie`, `il`, `im`, `in`, `iq`, `ir`, `is`, `it`, `je`, `jm`, `jo`,
	`jp`, `ke`, `kg`, `kh`, `ki`, `km`, `kn`, `kp`, `kr`, `kw`, `ky`, `kz`,
	`la`, `lb`, `lc`, `li`, `lk`, `lr`, `ls`, `lt`, `lu`, `lv`, `ly`, `ma`,
	`mc`, `md`, `mg`, `mh`, `mk`, `ml`, `mm`, `mn`, `mo`, `mp`, `mq`, `mr`,
	`ms`, `mt`, `mu`, `mv`, `mw`, `mx`, `my`, `mz`, `na`, `nc`, `ne`, `nf`,
	`ng`, `ni`, `nl`, `no`, `np`, `nr`, `nu`, `nz`, `om`, `pa`, `pe`, `pf`,
	`pg`, `ph`, `pk`, `pl`, `pm`, `pn`, `pr`, `ps`, `pt`, `pw`, `py`, `qa`,
	`re`, `ro`, `rs`, `ru`, `rw`, `sa`, `sb`, `sc`, `sd`, `se`, `sg`, `sh`,
	`si`, `sk`, `sl`, `sm`, `sn`, `so`, `sr`, `ss`, `st`, `su`, `sv`, `sx`,
	`sy`, `sz`, `tc`, `td`, `tf`, `tg`, `th`, `tj`, `tk`, `tl`, `tm`, `tn`,
	`to`, `tr`, `tt`, `tw`, `tz`, `ua`, `ug`, `uk`, `us`, `uy`, `uz`, `va`,
	`vc`, `ve`, `vg`, `vi`, `vn`, `vu`, `wf`, `ws`, `ye`, `yt`, `za`, `zm`,
	`zw`,
	`co.uk`, `org.uk`, `ac.uk`, `gov.uk`, `com.au`, `net.au`, `org.au`,
	`co.jp`, `co.nz`, `com.br`, `com.cn`, `co.in`, `co.za`,
}
